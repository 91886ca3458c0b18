package setting

import "context"

// MessengerConfigRepository returns nil, nil when no record exists for key.
type MessengerConfigRepository interface {
	GetByKey(ctx context.Context, key string) (*MessengerConfig, error)
	Upsert(ctx context.Context, cfg *MessengerConfig) error
}
