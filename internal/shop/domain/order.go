package domain

import "time"

type OrderState string

const (
	StateDraft      OrderState = "Draft"
	StateNew        OrderState = "New"
	StateInProgress OrderState = "InProgress"
	StateOnHold     OrderState = "OnHold"
	StateCompleted  OrderState = "Completed"
	StateCanceled   OrderState = "Canceled"
)

// Order is the orders service's view of an order.
type Order struct {
	OrderID    string     `json:"orderId"`
	CustomerID string     `json:"customerId"`
	State      OrderState `json:"state"`
	DueDate    time.Time  `json:"dueDate"`
	ItemIDs    []string   `json:"itemIds"`
}

type OrderItem struct {
	ItemID string `json:"itemId"`
	Title  string `json:"title"`
	Price  string `json:"price"`
}

// FullOrder is an order with its resolved items. Items that failed to
// resolve are absent, so len(Items) may be less than the order's item count.
type FullOrder struct {
	OrderID    string      `json:"orderId"`
	CustomerID string      `json:"customerId"`
	State      OrderState  `json:"state"`
	DueDate    time.Time   `json:"dueDate"`
	Items      []OrderItem `json:"items"`
}

func ToFullOrder(o Order, items []OrderItem) FullOrder {
	if items == nil {
		items = []OrderItem{}
	}
	return FullOrder{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		State:      o.State,
		DueDate:    o.DueDate,
		Items:      items,
	}
}

type IndexPage struct {
	Title  string      `json:"title"`
	Orders []FullOrder `json:"orders"`
}

// IndexOrderIDs are the orders shown on the index page, in display order.
var IndexOrderIDs = []string{
	"e5377e96-c6c6-4f00-bdd1-f36efb6b9b6a",
	"998d14af-aac1-4082-8194-990a3c24f553",
}
