package application

import (
	"context"

	"github.com/dmehra2102/otel-shop/internal/shop/domain"
)

type OrderClient interface {
	FindOrder(ctx context.Context, orderID string) (domain.Order, error)
}

type ItemClient interface {
	FindItem(ctx context.Context, itemID string) (domain.OrderItem, error)
}

type HitCounter interface {
	Inc(ctx context.Context)
}
