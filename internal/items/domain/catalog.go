package domain

type Catalog struct {
	items map[string]OrderItem
}

func NewCatalog(items ...OrderItem) *Catalog {
	m := make(map[string]OrderItem, len(items))
	for _, it := range items {
		m[it.ItemID] = it
	}
	return &Catalog{items: m}
}

func (c *Catalog) Get(id string) (OrderItem, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c *Catalog) Len() int { return len(c.items) }

func SeedCatalog() *Catalog {
	return NewCatalog(
		OrderItem{ItemID: "41a1c650-df66-46d0-b7fb-96a117c5dda7", Title: "Hat: Spring Boot FTW", Price: "100"},
		OrderItem{ItemID: "e5b6da9d-ba51-4119-b527-ace1aaa7985e", Title: "Laptop sticker: I love Java", Price: "15"},
		OrderItem{ItemID: "dc68e695-e8c3-4bc9-9531-28aed4a6ecd6", Title: "T-shirt: Kubernetes is boring", Price: "27"},
	)
}
