package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("item not found")

// Item is an inventory record. Every item has exactly one owner; it is
// visible and mutable only through queries scoped to that owner.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	OwnerID     int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
