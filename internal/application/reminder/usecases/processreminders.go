package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/domain/setting"
	"github.com/teamboard/teamboard/internal/shared/biztime"
	apperrors "github.com/teamboard/teamboard/internal/shared/errors"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// LeaseName is the run lease shared by every trigger (timer, HTTP, CLI).
const LeaseName = "reminder-dispatch"

// RunResult summarises one run.
type RunResult struct {
	Date    string `json:"date"`
	Queued  int    `json:"queued"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
}

type ProcessRemindersConfig struct {
	DispatchDelay time.Duration
	LeaseTTL      time.Duration
}

// ProcessRemindersUseCase runs one collection-and-dispatch cycle.
type ProcessRemindersUseCase struct {
	collectors  []ItemCollector
	channels    reminder.ChannelRepository
	sender      MessageSender
	credentials CredentialChecker
	lease       reminder.RunLease
	cfg         ProcessRemindersConfig
	wait        WaitFunc
	now         func() time.Time
	logger      logger.Interface
}

// NewProcessRemindersUseCase builds the orchestrator. Items are queued in
// collector order: pass the activity collector before the task collector.
func NewProcessRemindersUseCase(
	collectors []ItemCollector,
	channels reminder.ChannelRepository,
	sender MessageSender,
	credentials CredentialChecker,
	lease reminder.RunLease,
	cfg ProcessRemindersConfig,
	logger logger.Interface,
) *ProcessRemindersUseCase {
	return &ProcessRemindersUseCase{
		collectors:  collectors,
		channels:    channels,
		sender:      sender,
		credentials: credentials,
		lease:       lease,
		cfg:         cfg,
		wait:        SleepContext,
		now:         time.Now,
		logger:      logger,
	}
}

// ReminderRun is a run that holds the lease. Execute must be called exactly
// once; it releases the lease.
type ReminderRun struct {
	uc    *ProcessRemindersUseCase
	token string
	today time.Time
}

// Begin acquires the run lease. It returns a conflict AppError wrapping
// reminder.ErrRunInProgress when another run is active.
func (uc *ProcessRemindersUseCase) Begin(ctx context.Context) (*ReminderRun, error) {
	token, acquired, err := uc.lease.Acquire(ctx, LeaseName, uc.cfg.LeaseTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire reminder run lease: %w", err)
	}
	if !acquired {
		return nil, apperrors.NewConflictError("reminder run already in progress").Wrap(reminder.ErrRunInProgress)
	}

	return &ReminderRun{
		uc:    uc,
		token: token,
		today: biztime.DateOnly(uc.now()),
	}, nil
}

// Date is the business day the run processes.
func (r *ReminderRun) Date() string {
	return biztime.FormatDate(r.today)
}

// ProcessAllReminders acquires the lease and runs one full cycle.
func (uc *ProcessRemindersUseCase) ProcessAllReminders(ctx context.Context) (*RunResult, error) {
	run, err := uc.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return run.Execute(ctx)
}

// ProcessReminders adapts ProcessAllReminders to the scheduler job signature.
// A run already in progress is not an error for the timer.
func (uc *ProcessRemindersUseCase) ProcessReminders(ctx context.Context) error {
	_, err := uc.ProcessAllReminders(ctx)
	if errors.Is(err, reminder.ErrRunInProgress) {
		uc.logger.Infow("reminder run skipped, another run holds the lease")
		return nil
	}
	return err
}

func (r *ReminderRun) Execute(ctx context.Context) (result *RunResult, err error) {
	uc := r.uc
	date := r.Date()
	result = &RunResult{Date: date}

	defer func() {
		// Release even when ctx was cancelled mid-run.
		if relErr := uc.lease.Release(context.WithoutCancel(ctx), LeaseName, r.token); relErr != nil {
			uc.logger.Errorw("failed to release reminder run lease", "error", relErr)
		}
	}()

	uc.logger.Infow("reminder processing started", "date", date)

	batches, err := uc.collect(ctx, r.today)
	if err != nil {
		uc.logger.Errorw("reminder collection failed", "date", date, "error", err)
		return result, err
	}

	queue := NewDispatchQueue(uc.cfg.DispatchDelay, uc.wait, batches...)
	result.Queued = queue.Len()
	uc.logger.Infow("reminder messages to send", "date", date, "count", queue.Len())

	if need, ok := exceedsDeadline(ctx, queue.Len(), uc.cfg.DispatchDelay); ok {
		uc.logger.Warnw("reminder queue needs longer than the run deadline allows, remaining items will be skipped",
			"date", date,
			"count", queue.Len(),
			"dispatch_delay", uc.cfg.DispatchDelay,
			"needed", need,
		)
	}

	if queue.Len() > 0 {
		if err := uc.checkCredentials(ctx); err != nil {
			result.Skipped = queue.Len()
			uc.logger.Errorw("reminder dispatch aborted", "date", date, "error", err)
			return result, err
		}
	}

	err = queue.Drain(ctx, func(ctx context.Context, index int, item reminder.DispatchItem) error {
		return uc.dispatch(ctx, index, queue.Len(), item, result)
	})
	result.Skipped = result.Queued - result.Sent - result.Failed

	if err != nil {
		uc.logger.Errorw("reminder dispatch stopped",
			"date", date,
			"sent", result.Sent,
			"failed", result.Failed,
			"skipped", result.Skipped,
			"error", err,
		)
		return result, err
	}

	uc.logger.Infow("reminder processing completed",
		"date", date,
		"sent", result.Sent,
		"failed", result.Failed,
	)
	return result, nil
}

// exceedsDeadline reports whether draining n items with delay between them
// takes longer than the time left on ctx. It returns the time the waits need.
func exceedsDeadline(ctx context.Context, n int, delay time.Duration) (time.Duration, bool) {
	if n < 2 || delay <= 0 {
		return 0, false
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0, false
	}
	need := time.Duration(n-1) * delay
	return need, time.Until(deadline) < need
}

// collect runs every collector concurrently and returns their item lists in
// collector order.
func (uc *ProcessRemindersUseCase) collect(ctx context.Context, today time.Time) ([][]reminder.DispatchItem, error) {
	batches := make([][]reminder.DispatchItem, len(uc.collectors))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range uc.collectors {
		g.Go(func() error {
			items, err := c.Collect(gctx, today)
			if err != nil {
				return err
			}
			batches[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return batches, nil
}

func (uc *ProcessRemindersUseCase) checkCredentials(ctx context.Context) error {
	if _, err := uc.credentials.GetMessengerCredential(ctx); err != nil {
		if errors.Is(err, setting.ErrMessengerCredentialsMissing) {
			return apperrors.NewConfigurationError("messenger credentials are not configured").Wrap(err)
		}
		return fmt.Errorf("failed to resolve messenger credentials: %w", err)
	}
	return nil
}

// dispatch sends one item. It returns an error only when the run must stop.
func (uc *ProcessRemindersUseCase) dispatch(ctx context.Context, index, total int, item reminder.DispatchItem, result *RunResult) error {
	if err := uc.sender.SendToGroup(ctx, item.DestinationID, item.Message); err != nil {
		if isFatalSendError(ctx, err) {
			return err
		}
		result.Failed++
		uc.logger.Errorw("failed to send reminder",
			"label", item.Label,
			"position", index+1,
			"total", total,
			"error", err,
		)
		return nil
	}

	result.Sent++
	uc.logger.Infow("reminder sent", "label", item.Label, "position", index+1, "total", total)

	if err := uc.channels.UpdateLastSent(ctx, item.ChannelID, uc.now().UTC()); err != nil {
		uc.logger.Warnw("failed to update channel last sent time",
			"channel_id", item.ChannelID,
			"error", err,
		)
	}
	return nil
}

func isFatalSendError(ctx context.Context, err error) bool {
	if apperrors.IsConfigurationError(err) || errors.Is(err, setting.ErrMessengerCredentialsMissing) {
		return true
	}
	return ctx.Err() != nil
}
