package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/shared/logger"
)

type processorFunc func(ctx context.Context) error

func (f processorFunc) ProcessReminders(ctx context.Context) error { return f(ctx) }

func TestSchedulerManager_RegisterReminderJobs(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	noop := processorFunc(func(ctx context.Context) error { return nil })
	require.NoError(t, m.RegisterReminderJobs(noop, "0 8 * * *", 2*time.Hour))

	jobs := m.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, reminderJobName, jobs[0].Name())
	assert.ElementsMatch(t, []string{"reminder", "messenger"}, jobs[0].Tags())

	m.Start()
	assert.True(t, m.IsStarted())

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	assert.NoError(t, m.Stop())
}

func TestSchedulerManager_InvalidCron(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	noop := processorFunc(func(ctx context.Context) error { return nil })
	assert.Error(t, m.RegisterReminderJobs(noop, "not a cron", time.Hour))
}

func TestSchedulerManager_ProcessRemindersUsesDeadline(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	var calls atomic.Int32
	var hadDeadline atomic.Bool
	p := processorFunc(func(ctx context.Context) error {
		calls.Add(1)
		_, ok := ctx.Deadline()
		hadDeadline.Store(ok)
		return errors.New("messenger down")
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	assert.NotPanics(t, func() { m.processReminders(ctx, p) })
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, hadDeadline.Load())
}

func TestSchedulerManager_StopCancelsRunningJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	started := make(chan struct{})
	var runErr atomic.Value
	p := processorFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		runErr.Store(ctx.Err())
		return ctx.Err()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.runReminderJob(p, time.Hour)
	}()
	<-started

	require.NoError(t, m.Stop())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not cancelled")
	}
	assert.Equal(t, context.Canceled, runErr.Load())
}
