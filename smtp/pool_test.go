package smtp

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func countingFactory(calls *atomic.Int32) func() (*mail.Client, error) {
	return func() (*mail.Client, error) {
		calls.Add(1)
		// Construction does not dial; safe without a server.
		return mail.NewClient("localhost")
	}
}

func TestPool_LazyClientCreation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := newPool(2, countingFactory(&calls))
	require.Equal(t, int32(0), calls.Load())

	c, err := p.get(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())

	// A returned slot keeps its client.
	p.put(c)
	c2, err := p.get(context.Background())
	require.NoError(t, err)
	require.Same(t, c, c2)
	require.Equal(t, int32(1), calls.Load())
}

func TestPool_DiscardReplacesSlot(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := newPool(1, countingFactory(&calls))

	c, err := p.get(context.Background())
	require.NoError(t, err)
	p.discard(c)

	// The replacement slot creates a fresh client.
	c2, err := p.get(context.Background())
	require.NoError(t, err)
	require.NotSame(t, c, c2)
	require.Equal(t, int32(2), calls.Load())
}

func TestPool_GetBlocksUntilContextDone(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := newPool(1, countingFactory(&calls))

	c, err := p.get(context.Background())
	require.NoError(t, err)
	defer p.put(c)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = p.get(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_CloseRejectsFurtherCheckouts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := newPool(2, countingFactory(&calls))
	require.NoError(t, p.close())

	_, err := p.get(context.Background())
	require.ErrorIs(t, err, errPoolClosed)
}
