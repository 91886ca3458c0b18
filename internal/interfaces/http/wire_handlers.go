package http

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/infrastructure/config"
	"github.com/teamboard/teamboard/internal/interfaces/http/handlers"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	reminderHandler  *handlers.ReminderHandler
	messengerHandler *handlers.MessengerHandler
}

func newHandlers(db *gorm.DB, ucs *allUseCases, cfg *config.Config, log logger.Interface) (*allHandlers, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(sqlDB, log),
		reminderHandler: handlers.NewReminderHandler(
			&reminderRunnerAdapter{uc: ucs.processRemindersUC},
			cfg.Reminder.LeaseTTL,
			log.Named("reminder-handler"),
		),
		messengerHandler: handlers.NewMessengerHandler(ucs.messengerClient, ucs.credentialProvider, log),
	}, nil
}
