// Package cache holds the Redis-backed helpers.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/teamboard/teamboard/internal/domain/reminder"
)

const runLeaseKeyPrefix = "teamboard:lease:"

// releaseLeaseScript deletes the lease only while ARGV[1] still holds it.
// KEYS[1] = lease key, ARGV[1] = holder token
// Returns 1 if deleted, 0 if the lease is gone or owned by someone else
var releaseLeaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisRunLease is a reminder.RunLease built on SET NX with a TTL, so a
// crashed holder's lease expires on its own.
type RedisRunLease struct {
	client *redis.Client
	prefix string
}

func NewRedisRunLease(client *redis.Client) *RedisRunLease {
	return &RedisRunLease{
		client: client,
		prefix: runLeaseKeyPrefix,
	}
}

var _ reminder.RunLease = (*RedisRunLease)(nil)

func (l *RedisRunLease) Acquire(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	if name == "" {
		return "", false, errors.New("lease name cannot be empty")
	}

	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+name, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire run lease in redis: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisRunLease) Release(ctx context.Context, name, token string) error {
	if err := releaseLeaseScript.Run(ctx, l.client, []string{l.prefix + name}, token).Err(); err != nil {
		return fmt.Errorf("failed to release run lease in redis: %w", err)
	}
	return nil
}
