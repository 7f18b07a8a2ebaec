package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mistgo/inventory-api/internal/core/domain"
	"github.com/mistgo/inventory-api/internal/core/ports"
)

// ItemService implements the item use-cases. Every operation is scoped to the
// caller's identity; the ownership predicate lives in the repository so no
// handler can reach another owner's rows.
type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, input ports.ItemInput) (*domain.Item, error) {
	item := &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Int64("item_id", created.ID).Int64("owner_id", ownerID).Msg("item created")
	return created, nil
}

func (s *ItemService) List(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ItemService) Get(ctx context.Context, id, ownerID int64) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

// Update replaces the mutable fields of an owned item. The read and the write
// both carry the owner filter, so a row owned by someone else reads as absent
// and is never modified.
func (s *ItemService) Update(ctx context.Context, id, ownerID int64, input ports.ItemInput) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.Quantity = input.Quantity

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", id).Int64("owner_id", ownerID).Msg("item updated")
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info().Int64("item_id", id).Int64("owner_id", ownerID).Msg("item deleted")
	return nil
}
