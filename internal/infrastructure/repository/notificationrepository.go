package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/notification"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/mappers"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) notification.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notif *notification.Notification) error {
	model, err := r.mapper.ToModel(notif)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := notif.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

type NotificationPreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationPreferenceRepository(db *gorm.DB) notification.PreferenceRepository {
	return &NotificationPreferenceRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationPreferenceRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (notification.Preferences, error) {
	var model models.NotificationPreferenceModel

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}

	return r.mapper.PreferencesToEntity(&model)
}
