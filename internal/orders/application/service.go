package application

import (
	"context"
	"log/slog"

	"github.com/dmehra2102/otel-shop/internal/orders/domain"
	"github.com/dmehra2102/otel-shop/pkg/latency"
)

type Service struct {
	log     *slog.Logger
	catalog *domain.Catalog
	delay   latency.Injector
	hits    HitCounter
}

func NewService(log *slog.Logger, catalog *domain.Catalog, delay latency.Injector, hits HitCounter) *Service {
	return &Service{log: log, catalog: catalog, delay: delay, hits: hits}
}

// FindOrder looks up id after a simulated backend delay.
func (s *Service) FindOrder(ctx context.Context, id string) (domain.Order, error) {
	s.hits.Inc(ctx)

	s.log.InfoContext(ctx, "looking up order", "order_id", id)
	order, ok := s.catalog.Get(id)

	d, err := s.delay.Sleep(ctx)
	s.log.DebugContext(ctx, "slowed down orders service", "delay_ms", d.Milliseconds())
	if err != nil {
		return domain.Order{}, err
	}

	if !ok {
		s.log.InfoContext(ctx, "order not found", "order_id", id)
		return domain.Order{}, &domain.NotFoundError{OrderID: id}
	}
	s.log.InfoContext(ctx, "order found", "order_id", id, "customer_id", order.CustomerID, "state", order.State)
	return order, nil
}
