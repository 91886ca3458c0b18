package http

import (
	"context"

	reminderUsecases "github.com/teamboard/teamboard/internal/application/reminder/usecases"
	"github.com/teamboard/teamboard/internal/interfaces/http/handlers"
)

// reminderRunnerAdapter narrows *ProcessRemindersUseCase to handlers.ReminderRunner.
type reminderRunnerAdapter struct {
	uc *reminderUsecases.ProcessRemindersUseCase
}

func (a *reminderRunnerAdapter) Begin(ctx context.Context) (handlers.ReminderRun, error) {
	run, err := a.uc.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return run, nil
}
