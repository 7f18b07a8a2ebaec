package ports

import (
	"context"

	"github.com/mistgo/inventory-api/internal/core/domain"
)

// ItemRepository defines persistence operations for items.
//
// Every single-item operation takes the caller's ownerID and filters by it in
// the same query that selects the id. An item that exists but belongs to
// another owner is indistinguishable from one that does not exist: both
// surface as domain.ErrItemNotFound. No path may omit this predicate.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	FindByID(ctx context.Context, id, ownerID int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
