package ports

import (
	"context"

	"github.com/mistgo/inventory-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Create must rely on the store's unique index on username to resolve
// concurrent registrations, returning domain.ErrUsernameTaken on conflict.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
