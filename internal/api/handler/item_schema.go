package handler

import "time"

// itemRequest is the body for both create and full-replace update.
type itemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price"       validate:"gte=0,lte=999999.99"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
}

type itemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}
