package domain

import "errors"

// OrderItem is a catalog entry. Price is kept as the display string.
type OrderItem struct {
	ItemID string `json:"itemId"`
	Title  string `json:"title"`
	Price  string `json:"price"`
}

var ErrNotFound = errors.New("item not found")

type NotFoundError struct {
	ItemID string
}

func (e *NotFoundError) Error() string { return "Item not found: " + e.ItemID }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
