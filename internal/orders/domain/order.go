package domain

import (
	"errors"
	"time"
)

type OrderState string

const (
	StateDraft      OrderState = "Draft"
	StateNew        OrderState = "New"
	StateInProgress OrderState = "InProgress"
	StateOnHold     OrderState = "OnHold"
	StateCompleted  OrderState = "Completed"
	StateCanceled   OrderState = "Canceled"
)

type Order struct {
	OrderID    string     `json:"orderId"`
	CustomerID string     `json:"customerId"`
	State      OrderState `json:"state"`
	DueDate    time.Time  `json:"dueDate"`
	ItemIDs    []string   `json:"itemIds"`
}

var ErrNotFound = errors.New("order not found")

// NotFoundError carries the id that failed to resolve.
type NotFoundError struct {
	OrderID string
}

func (e *NotFoundError) Error() string { return "Order not found: " + e.OrderID }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
