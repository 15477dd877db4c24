package application

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/otel-shop/internal/shop/domain"
)

type Service struct {
	log      *slog.Logger
	title    string
	orderIDs []string
	orders   OrderClient
	items    ItemClient
	hits     HitCounter
	tracer   trace.Tracer
}

type Option func(*Service)

// WithOrderIDs replaces the fixed list of orders shown on the index page.
func WithOrderIDs(ids ...string) Option {
	return func(s *Service) { s.orderIDs = slices.Clone(ids) }
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

func NewService(log *slog.Logger, title string, orders OrderClient, items ItemClient, hits HitCounter, opts ...Option) *Service {
	s := &Service{
		log:      log,
		title:    title,
		orderIDs: domain.IndexOrderIDs,
		orders:   orders,
		items:    items,
		hits:     hits,
		tracer:   otel.Tracer("shop"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index builds the index page. Orders and items whose lookup fails are
// logged and left out; the page itself never fails.
func (s *Service) Index(ctx context.Context) domain.IndexPage {
	s.log.InfoContext(ctx, "building content for index page")
	s.hits.Inc(ctx)

	ctx, span := s.tracer.Start(ctx, "shop.indexPage")
	defer span.End()

	orders := make([]domain.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		if o, ok := s.fetchOrder(ctx, id); ok {
			orders = append(orders, o)
		}
	}

	fullOrders := make([]domain.FullOrder, 0, len(orders))
	for _, o := range orders {
		items := make([]domain.OrderItem, 0, len(o.ItemIDs))
		for _, itemID := range o.ItemIDs {
			if it, ok := s.fetchItem(ctx, itemID); ok {
				items = append(items, it)
			}
		}
		fullOrders = append(fullOrders, domain.ToFullOrder(o, items))
	}

	span.AddEvent("built", trace.WithAttributes(attribute.Int("orders", len(fullOrders))))
	return domain.IndexPage{Title: s.title, Orders: fullOrders}
}

func (s *Service) fetchOrder(ctx context.Context, id string) (domain.Order, bool) {
	ctx, span := s.tracer.Start(ctx, "shop.findOrder", trace.WithAttributes(attribute.String("order", id)))
	defer span.End()

	s.log.InfoContext(ctx, "fetching order details", "order_id", id)
	o, err := s.orders.FindOrder(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.WarnContext(ctx, "failed to get order details", "order_id", id, "err", err)
		return domain.Order{}, false
	}
	return o, true
}

func (s *Service) fetchItem(ctx context.Context, id string) (domain.OrderItem, bool) {
	ctx, span := s.tracer.Start(ctx, "shop.findItem", trace.WithAttributes(attribute.String("item", id)))
	defer span.End()

	s.log.InfoContext(ctx, "fetching item details", "item_id", id)
	it, err := s.items.FindItem(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.WarnContext(ctx, "failed to get item details", "item_id", id, "err", err)
		return domain.OrderItem{}, false
	}
	return it, true
}
