package usecases

import (
	"context"
	"fmt"

	"github.com/teamboard/teamboard/internal/domain/notification"
	vo "github.com/teamboard/teamboard/internal/domain/notification/valueobjects"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// CreateNotificationCommand describes one in-app notification for one user.
type CreateNotificationCommand struct {
	UserID     uint
	Type       vo.NotificationType
	Title      string
	Message    string
	TaskID     *uint
	ActivityID *uint
}

// CreateNotificationUseCase writes an in-app notification unless the user has
// opted out of its type.
type CreateNotificationUseCase struct {
	repo     notification.NotificationRepository
	prefRepo notification.PreferenceRepository
	logger   logger.Interface
}

func NewCreateNotificationUseCase(
	repo notification.NotificationRepository,
	prefRepo notification.PreferenceRepository,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		repo:     repo,
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// Execute reports created=false with a nil error when the preference filter
// suppressed the notification.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, cmd CreateNotificationCommand) (created bool, err error) {
	prefs, err := uc.prefRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to load notification preferences for user %d: %w", cmd.UserID, err)
	}

	if !prefs.Allows(cmd.Type) {
		uc.logger.Debugw("notification suppressed by user preference",
			"user_id", cmd.UserID,
			"type", cmd.Type,
		)
		return false, nil
	}

	n, err := notification.NewNotification(cmd.UserID, cmd.Type, cmd.Title, cmd.Message, cmd.TaskID, cmd.ActivityID)
	if err != nil {
		return false, fmt.Errorf("invalid notification: %w", err)
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		return false, fmt.Errorf("failed to save notification: %w", err)
	}

	return true, nil
}
