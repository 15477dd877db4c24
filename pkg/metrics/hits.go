package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HitCounter counts page hits on the shared "hit.counter" instrument, tagged by page.
type HitCounter struct {
	counter metric.Int64Counter
	attrs   metric.MeasurementOption
}

func NewHitCounter(meter metric.Meter, page string) (*HitCounter, error) {
	c, err := meter.Int64Counter("hit.counter",
		metric.WithDescription("Hit counter"),
		metric.WithUnit("{hits}"),
	)
	if err != nil {
		return nil, err
	}
	return &HitCounter{
		counter: c,
		attrs:   metric.WithAttributeSet(attribute.NewSet(attribute.String("page", page))),
	}, nil
}

func (h *HitCounter) Inc(ctx context.Context) {
	h.counter.Add(ctx, 1, h.attrs)
}
