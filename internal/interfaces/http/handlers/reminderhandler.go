package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/shared/errors"
	"github.com/teamboard/teamboard/internal/shared/goroutine"
	"github.com/teamboard/teamboard/internal/shared/logger"
	"github.com/teamboard/teamboard/internal/shared/utils"
)

// TriggerResponse acknowledges a run started in the background.
type TriggerResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type ReminderHandler struct {
	runner     ReminderRunner
	runTimeout time.Duration
	logger     logger.Interface

	// background runs are cancelled through base on Shutdown
	base       context.Context
	cancelBase context.CancelFunc
	runs       sync.WaitGroup
}

// NewReminderHandler creates the handler for the reminder trigger endpoint.
// runTimeout bounds background runs; zero means no bound.
func NewReminderHandler(runner ReminderRunner, runTimeout time.Duration, logger logger.Interface) *ReminderHandler {
	base, cancel := context.WithCancel(context.Background())
	return &ReminderHandler{
		runner:     runner,
		runTimeout: runTimeout,
		logger:     logger,
		base:       base,
		cancelBase: cancel,
	}
}

// Shutdown cancels background runs and waits for them to return, so each
// one releases its lease before the process exits.
func (h *ReminderHandler) Shutdown(ctx context.Context) error {
	h.cancelBase()

	done := make(chan struct{})
	go func() {
		h.runs.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		h.logger.Warnw("background reminder runs still active at shutdown", "error", ctx.Err())
		return ctx.Err()
	}
}

// TriggerReminders starts a reminder run.
//
// By default the run continues after the response (202). With ?wait=true the
// request blocks until the run completes and returns its counts. A run
// already in progress yields 409.
func (h *ReminderHandler) TriggerReminders(c *gin.Context) {
	wait := false
	if raw := c.Query("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid wait parameter", raw))
			return
		}
		wait = parsed
	}

	run, err := h.runner.Begin(c.Request.Context())
	if err != nil {
		if !errors.IsConflictError(err) {
			h.logger.Errorw("failed to start reminder run", "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	if wait {
		result, err := run.Execute(c.Request.Context())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Reminder run completed", result)
		return
	}

	h.logger.Infow("reminder run accepted", "date", run.Date())
	h.runs.Add(1)
	goroutine.SafeGo(c.Request.Context(), h.logger, "reminder-run", func(ctx context.Context) {
		defer h.runs.Done()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(h.base, cancel)
		defer stop()

		if h.runTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.runTimeout)
			defer cancel()
		}
		if _, err := run.Execute(ctx); err != nil {
			h.logger.Errorw("background reminder run failed", "date", run.Date(), "error", err)
		}
	})

	utils.AcceptedResponse(c, "Reminder run started", TriggerResponse{
		Date:   run.Date(),
		Status: "accepted",
	})
}
