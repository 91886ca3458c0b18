package goroutine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/shared/logger"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("goroutine did not finish")
	}
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	done := SafeGo(context.Background(), logger.NewNopLogger(), "boom", func(ctx context.Context) {
		panic("reminder run exploded")
	})
	waitDone(t, done)
}

func TestSafeGo_DetachesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var innerErr error
	done := SafeGo(ctx, logger.NewNopLogger(), "detached", func(ctx context.Context) {
		innerErr = ctx.Err()
	})
	waitDone(t, done)

	require.Error(t, ctx.Err())
	assert.NoError(t, innerErr)
}
