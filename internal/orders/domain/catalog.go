package domain

import (
	"slices"
	"time"
)

// Catalog is the read-only set of orders served by the orders service.
type Catalog struct {
	orders map[string]Order
}

func NewCatalog(orders ...Order) *Catalog {
	m := make(map[string]Order, len(orders))
	for _, o := range orders {
		m[o.OrderID] = o
	}
	return &Catalog{orders: m}
}

// Get returns a copy so callers cannot mutate the seeded item list.
func (c *Catalog) Get(id string) (Order, bool) {
	o, ok := c.orders[id]
	if !ok {
		return Order{}, false
	}
	o.ItemIDs = slices.Clone(o.ItemIDs)
	return o, true
}

func (c *Catalog) Len() int { return len(c.orders) }

// SeedCatalog holds the demo orders.
func SeedCatalog() *Catalog {
	return NewCatalog(
		Order{
			OrderID:    "e5377e96-c6c6-4f00-bdd1-f36efb6b9b6a",
			CustomerID: "johndoe",
			State:      StateNew,
			DueDate:    time.Date(2022, time.November, 14, 9, 13, 30, 0, time.UTC),
			ItemIDs: []string{
				"41a1c650-df66-46d0-b7fb-96a117c5dda7",
				"e5b6da9d-ba51-4119-b527-ace1aaa7985e",
			},
		},
		Order{
			OrderID:    "998d14af-aac1-4082-8194-990a3c24f553",
			CustomerID: "bartsimpsons",
			State:      StateCanceled,
			DueDate:    time.Date(2022, time.November, 25, 9, 34, 30, 0, time.UTC),
			ItemIDs:    []string{"dc68e695-e8c3-4bc9-9531-28aed4a6ecd6"},
		},
	)
}
