package handlers

import (
	"context"

	"github.com/teamboard/teamboard/internal/application/reminder/usecases"
)

// ReminderRunner starts reminder runs. Begin fails with a conflict error
// when another run holds the lease.
type ReminderRunner interface {
	Begin(ctx context.Context) (ReminderRun, error)
}

type ReminderRun interface {
	Date() string
	Execute(ctx context.Context) (*usecases.RunResult, error)
}
