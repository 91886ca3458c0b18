package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
}

// PreferenceRepository returns nil, nil when the user has no stored preferences.
type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID uint) (Preferences, error)
}
