// Package latency injects artificial delay into request handling.
package latency

import (
	"context"
	"math/rand/v2"
	"time"
)

// Injector sleeps for some duration and reports how long it chose.
type Injector interface {
	Sleep(ctx context.Context) (time.Duration, error)
}

// Random sleeps a uniformly distributed duration in [0, Max).
type Random struct {
	Max time.Duration
}

func NewRandom(maxDelay time.Duration) Random { return Random{Max: maxDelay} }

func (r Random) Next() time.Duration {
	if r.Max <= 0 {
		return 0
	}
	return rand.N(r.Max)
}

// Sleep returns early with ctx.Err() if ctx is done first.
func (r Random) Sleep(ctx context.Context) (time.Duration, error) {
	d := r.Next()
	return d, sleep(ctx, d)
}

// Fixed always sleeps D. A zero Fixed does not sleep at all.
type Fixed struct {
	D time.Duration
}

func (f Fixed) Sleep(ctx context.Context) (time.Duration, error) {
	return f.D, sleep(ctx, f.D)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
