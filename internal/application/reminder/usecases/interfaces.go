package usecases

import (
	"context"
	"time"

	notificationUsecases "github.com/teamboard/teamboard/internal/application/notification/usecases"
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/domain/setting"
)

// MessageSender delivers one message to a messaging group.
type MessageSender interface {
	SendToGroup(ctx context.Context, destinationID, message string) error
}

// CredentialChecker resolves messenger credentials before dispatch starts.
type CredentialChecker interface {
	GetMessengerCredential(ctx context.Context) (setting.MessengerCredential, error)
}

// NotificationCreator persists in-app notifications.
type NotificationCreator interface {
	Execute(ctx context.Context, cmd notificationUsecases.CreateNotificationCommand) (bool, error)
}

// ItemCollector turns stored reminders into dispatch items for one day.
type ItemCollector interface {
	Collect(ctx context.Context, today time.Time) ([]reminder.DispatchItem, error)
}
