package http

import (
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/notification"
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/domain/setting"
	"github.com/teamboard/teamboard/internal/infrastructure/crypto"
	"github.com/teamboard/teamboard/internal/infrastructure/repository"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// repositories holds the repository instances used by the application.
type repositories struct {
	reminderRepo        reminder.ReminderRepository
	templateRepo        reminder.TemplateRepository
	channelRepo         reminder.ChannelRepository
	notificationRepo    notification.NotificationRepository
	preferenceRepo      notification.PreferenceRepository
	messengerConfigRepo setting.MessengerConfigRepository
}

func newRepositories(db *gorm.DB, codec crypto.Codec, log logger.Interface) *repositories {
	return &repositories{
		reminderRepo:        repository.NewReminderRepository(db, log),
		templateRepo:        repository.NewMessageTemplateRepository(db),
		channelRepo:         repository.NewChannelRepository(db, codec, log),
		notificationRepo:    repository.NewNotificationRepository(db),
		preferenceRepo:      repository.NewNotificationPreferenceRepository(db),
		messengerConfigRepo: repository.NewMessengerConfigRepository(db, log),
	}
}
