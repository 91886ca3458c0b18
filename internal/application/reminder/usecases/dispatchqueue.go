package usecases

import (
	"context"
	"time"

	"github.com/teamboard/teamboard/internal/domain/reminder"
)

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// SleepContext is the production WaitFunc.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DispatchQueue is the ordered list of items built by one run. It is drained
// by a single worker; the delay separates the end of one send from the start
// of the next and is never applied after the last item.
type DispatchQueue struct {
	items []reminder.DispatchItem
	delay time.Duration
	wait  WaitFunc
}

func NewDispatchQueue(delay time.Duration, wait WaitFunc, batches ...[]reminder.DispatchItem) *DispatchQueue {
	var n int
	for _, b := range batches {
		n += len(b)
	}
	items := make([]reminder.DispatchItem, 0, n)
	for _, b := range batches {
		items = append(items, b...)
	}
	if wait == nil {
		wait = SleepContext
	}
	return &DispatchQueue{items: items, delay: delay, wait: wait}
}

func (q *DispatchQueue) Len() int {
	return len(q.items)
}

func (q *DispatchQueue) Items() []reminder.DispatchItem {
	return q.items
}

// Drain calls handle for each item in order. handle returns an error only to
// stop the queue; per-item delivery failures are its own business. Drain also
// stops when ctx is cancelled, before the next item or during the delay.
func (q *DispatchQueue) Drain(ctx context.Context, handle func(ctx context.Context, index int, item reminder.DispatchItem) error) error {
	for i, item := range q.items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := handle(ctx, i, item); err != nil {
			return err
		}
		if i < len(q.items)-1 {
			if err := q.wait(ctx, q.delay); err != nil {
				return err
			}
		}
	}
	return nil
}
