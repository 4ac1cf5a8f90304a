package model

import (
	"time"
)

// CartItem is a product snapshot plus a quantity. The snapshot is frozen
// when the product is added to the cart; later catalog edits never touch it.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Order is immutable once created. Total is computed at creation from the
// frozen items and never recomputed.
type Order struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
	Date   time.Time  `json:"date"`
}
