package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/teamboard/teamboard/internal/domain/notification"
	vo "github.com/teamboard/teamboard/internal/domain/notification/valueobjects"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	PreferencesToEntity(model *models.NotificationPreferenceModel) (notification.Preferences, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	notificationType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification type: %w", err)
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notificationType,
		model.Title,
		model.Message,
		model.TaskID,
		model.ActivityID,
		vo.ReadStatusFromBool(model.IsRead),
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NotificationModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Type:       entity.Type().String(),
		Title:      entity.Title(),
		Message:    entity.Message(),
		TaskID:     entity.TaskID(),
		ActivityID: entity.ActivityID(),
		IsRead:     entity.IsRead(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) PreferencesToEntity(model *models.NotificationPreferenceModel) (notification.Preferences, error) {
	if model == nil || len(model.Preferences) == 0 {
		return nil, nil
	}

	prefs := notification.Preferences{}
	if err := json.Unmarshal(model.Preferences, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification preferences: %w", err)
	}
	return prefs, nil
}
