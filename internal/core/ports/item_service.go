package ports

import (
	"context"

	"github.com/mistgo/inventory-api/internal/core/domain"
)

// ItemInput carries the client-supplied fields for creating or replacing an item.
type ItemInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

type ItemService interface {
	Create(ctx context.Context, ownerID int64, input ItemInput) (*domain.Item, error)
	List(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Item, error)
	Update(ctx context.Context, id, ownerID int64, input ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
