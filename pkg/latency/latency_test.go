package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_NextWithinBounds(t *testing.T) {
	r := NewRandom(time.Second)
	for i := 0; i < 10_000; i++ {
		d := r.Next()
		require.GreaterOrEqual(t, d, time.Duration(0))
		require.Less(t, d, time.Second)
	}
}

func TestRandom_ZeroMax(t *testing.T) {
	assert.Equal(t, time.Duration(0), Random{}.Next())
}

func TestRandom_SleepsChosenDuration(t *testing.T) {
	r := NewRandom(20 * time.Millisecond)
	start := time.Now()
	d, err := r.Sleep(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), d)
	assert.Less(t, d, 20*time.Millisecond)
}

func TestFixed_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := Fixed{D: time.Minute}.Sleep(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFixed_Zero(t *testing.T) {
	d, err := Fixed{}.Sleep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d)
}
