// Package goroutine launches background work that must not take the process
// down when it panics.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/teamboard/teamboard/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine with ctx detached from the caller's
// cancellation, so work started by an HTTP request outlives the request.
// A panic is logged with its stack. The returned channel closes when fn
// returns or panics.
func SafeGo(ctx context.Context, log logger.Interface, name string, fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})
	detached := context.WithoutCancel(ctx)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn(detached)
	}()

	return done
}
