package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mistgo/inventory-api/internal/core/domain"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	const query = `
		INSERT INTO items (name, description, price, quantity, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	created := *item
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Description, item.Price, item.Quantity, item.OwnerID, item.CreatedAt).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	return &created, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	const query = `
		SELECT id, name, description, price, quantity, owner_id, created_at
		FROM items
		WHERE owner_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Quantity, &item.OwnerID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// FindByID loads one item filtered by id AND owner. A row owned by someone
// else reads exactly like a missing row.
func (r *ItemRepository) FindByID(ctx context.Context, id, ownerID int64) (*domain.Item, error) {
	const query = `
		SELECT id, name, description, price, quantity, owner_id, created_at
		FROM items
		WHERE id = $1 AND owner_id = $2`

	var item domain.Item
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Quantity, &item.OwnerID, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	return &item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	const query = `
		UPDATE items
		SET name = $1, description = $2, price = $3, quantity = $4
		WHERE id = $5 AND owner_id = $6`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.Quantity, item.ID, item.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrItemNotFound
	}

	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id, ownerID int64) error {
	const query = `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}
