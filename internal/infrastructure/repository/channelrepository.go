package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/crypto"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/mappers"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// ChannelRepositoryImpl decrypts the stored group id before handing the
// channel to the domain. Both finders return the lowest id on ties.
type ChannelRepositoryImpl struct {
	db     *gorm.DB
	codec  crypto.Codec
	mapper mappers.ChannelMapper
	logger logger.Interface
}

func NewChannelRepository(db *gorm.DB, codec crypto.Codec, logger logger.Interface) reminder.ChannelRepository {
	return &ChannelRepositoryImpl{
		db:     db,
		codec:  codec,
		mapper: mappers.NewChannelMapper(),
		logger: logger,
	}
}

func (r *ChannelRepositoryImpl) FindByExactType(ctx context.Context, channelType string) (*reminder.Channel, error) {
	return r.findFirst(ctx, "type = ?", channelType)
}

func (r *ChannelRepositoryImpl) FindByContainsType(ctx context.Context, channelType string) (*reminder.Channel, error) {
	return r.findFirst(ctx, "type LIKE ? ESCAPE '!'", "%"+escapeLike(channelType)+"%")
}

// '!' is used as the escape character because a backslash literal parses
// differently on MySQL and the other drivers.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *ChannelRepositoryImpl) findFirst(ctx context.Context, query string, arg string) (*reminder.Channel, error) {
	var model models.ChannelModel

	err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}

	destination, err := r.codec.Decrypt(model.GroupID)
	if err != nil {
		r.logger.Errorw("failed to decrypt channel group id", "channel_id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to decrypt group id of channel %d: %w", model.ID, err)
	}

	return r.mapper.ToEntity(&model, destination), nil
}

func (r *ChannelRepositoryImpl) UpdateLastSent(ctx context.Context, channelID uint, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.ChannelModel{}).
		Where("id = ?", channelID).
		Update("last_message_sent_at", sentAt)
	if result.Error != nil {
		return fmt.Errorf("failed to update channel last sent time: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reminder.ErrChannelNotFound
	}
	return nil
}
