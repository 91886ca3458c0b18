// Package scheduler runs the daily reminder job on gocron v2.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/teamboard/teamboard/internal/shared/biztime"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

const reminderJobName = "reminder-dispatch"

// ReminderProcessor runs one reminder pass.
type ReminderProcessor interface {
	ProcessReminders(ctx context.Context) error
}

// SchedulerManager owns the gocron scheduler. Cron expressions are
// evaluated in the business timezone.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// job contexts derive from base; Stop cancels it
	base       context.Context
	cancelBase context.CancelFunc

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	base, cancel := context.WithCancel(context.Background())
	return &SchedulerManager{
		scheduler:  scheduler,
		logger:     log,
		base:       base,
		cancelBase: cancel,
	}, nil
}

// RegisterReminderJobs schedules the reminder pass on cronExpr. Each run gets
// timeout as its deadline, which should cover the whole dispatch queue. A
// tick that fires while the previous run is still going is skipped.
func (m *SchedulerManager) RegisterReminderJobs(
	processor ReminderProcessor,
	cronExpr string,
	timeout time.Duration,
) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			m.runReminderJob(processor, timeout)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("reminder", "messenger"),
		gocron.WithName(reminderJobName),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder jobs",
		"cron", cronExpr,
		"timezone", biztime.Location().String(),
		"timeout", timeout,
	)
	return nil
}

func (m *SchedulerManager) runReminderJob(processor ReminderProcessor, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(m.base, timeout)
	defer cancel()
	m.processReminders(ctx, processor)
}

func (m *SchedulerManager) processReminders(ctx context.Context, processor ReminderProcessor) {
	m.logger.Debugw("processing reminders task started")

	startTime := biztime.NowUTC()
	if err := processor.ProcessReminders(ctx); err != nil {
		// graceful shutdown
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		m.logger.Errorw("failed to process reminders",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Debugw("reminders processed successfully", "duration", time.Since(startTime))
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop cancels running jobs and waits for them to return.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	m.cancelBase()
	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
