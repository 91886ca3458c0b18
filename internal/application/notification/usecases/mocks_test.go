package usecases

import (
	"context"

	"github.com/teamboard/teamboard/internal/domain/notification"
)

type mockNotificationRepository struct {
	CreateFunc func(ctx context.Context, n *notification.Notification) error
	created    []*notification.Notification
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, n); err != nil {
			return err
		}
	}
	m.created = append(m.created, n)
	return nil
}

type mockPreferenceRepository struct {
	GetByUserIDFunc func(ctx context.Context, userID uint) (notification.Preferences, error)
}

func (m *mockPreferenceRepository) GetByUserID(ctx context.Context, userID uint) (notification.Preferences, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}
