package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/teamboard/teamboard/internal/domain/reminder"
)

// ChannelResolver maps a logical channel name to a channel record. An exact
// type match wins over a substring match.
type ChannelResolver struct {
	repo reminder.ChannelRepository
}

func NewChannelResolver(repo reminder.ChannelRepository) *ChannelResolver {
	return &ChannelResolver{repo: repo}
}

// Resolve returns reminder.ErrChannelNotFound when neither lookup matches.
func (r *ChannelResolver) Resolve(ctx context.Context, name string) (*reminder.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, reminder.ErrChannelNotFound
	}

	channel, err := r.repo.FindByExactType(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find channel by type %q: %w", name, err)
	}
	if channel != nil {
		return channel, nil
	}

	channel, err = r.repo.FindByContainsType(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search channel by type %q: %w", name, err)
	}
	if channel != nil {
		return channel, nil
	}

	return nil, reminder.ErrChannelNotFound
}
