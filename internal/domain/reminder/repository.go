package reminder

import (
	"context"
	"time"
)

// ReminderRepository lists enabled reminders with their parents loaded.
// Results are ordered by reminder id.
type ReminderRepository interface {
	ListEnabledActivityReminders(ctx context.Context) ([]*ActivityReminder, error)
	ListEnabledTaskReminders(ctx context.Context) ([]*TaskReminder, error)
}

// TemplateRepository returns nil, nil when the template does not exist.
type TemplateRepository interface {
	GetByID(ctx context.Context, id uint) (*MessageTemplate, error)
}

// ChannelRepository finders return nil, nil when nothing matches.
type ChannelRepository interface {
	FindByExactType(ctx context.Context, channelType string) (*Channel, error)
	FindByContainsType(ctx context.Context, channelType string) (*Channel, error)
	UpdateLastSent(ctx context.Context, channelID uint, sentAt time.Time) error
}

// RunLease serializes reminder runs across processes. Acquire reports
// acquired=false without error when another holder owns an unexpired lease.
type RunLease interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (token string, acquired bool, err error)
	Release(ctx context.Context, name, token string) error
}
