package application

import (
	"context"
	"log/slog"

	"github.com/dmehra2102/otel-shop/internal/items/domain"
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

func (s *Service) FindItem(ctx context.Context, id string) (domain.OrderItem, error) {
	s.hits.Inc(ctx)

	s.log.InfoContext(ctx, "looking up item", "item_id", id)
	item, ok := s.catalog.Get(id)

	d, err := s.delay.Sleep(ctx)
	s.log.DebugContext(ctx, "slowed down items service", "delay_ms", d.Milliseconds())
	if err != nil {
		return domain.OrderItem{}, err
	}

	if !ok {
		s.log.InfoContext(ctx, "item not found", "item_id", id)
		return domain.OrderItem{}, &domain.NotFoundError{ItemID: id}
	}
	s.log.InfoContext(ctx, "item found", "item_id", id, "title", item.Title)
	return item, nil
}
