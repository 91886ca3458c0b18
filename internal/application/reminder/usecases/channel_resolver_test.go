package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/domain/reminder"
)

func TestChannelResolver_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID uint
	}{
		{"exact match preferred over substring", "Marketing", 11},
		{"exact match on longer type", "Marketing-Finance", 10},
		{"substring fallback", "Finance", 10},
		{"surrounding spaces trimmed", "  Design ", 12},
	}

	resolver := NewChannelResolver(&mockChannelRepository{channels: defaultChannels()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := resolver.Resolve(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, ch.ID)
		})
	}
}

func TestChannelResolver_NotFound(t *testing.T) {
	resolver := NewChannelResolver(&mockChannelRepository{channels: defaultChannels()})

	for _, name := range []string{"Sales", "", "   "} {
		_, err := resolver.Resolve(context.Background(), name)
		assert.ErrorIs(t, err, reminder.ErrChannelNotFound, name)
	}
}

func TestChannelResolver_RepositoryError(t *testing.T) {
	resolver := NewChannelResolver(&mockChannelRepository{findErr: errors.New("db down")})

	_, err := resolver.Resolve(context.Background(), "Marketing")

	require.Error(t, err)
	assert.NotErrorIs(t, err, reminder.ErrChannelNotFound)
}
