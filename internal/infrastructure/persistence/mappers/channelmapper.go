package mappers

import (
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

// ChannelMapper leaves decryption of the group id to the repository; the
// destination passed in is already plaintext.
type ChannelMapper interface {
	ToEntity(model *models.ChannelModel, destination string) *reminder.Channel
}

type ChannelMapperImpl struct{}

func NewChannelMapper() ChannelMapper {
	return &ChannelMapperImpl{}
}

func (m *ChannelMapperImpl) ToEntity(model *models.ChannelModel, destination string) *reminder.Channel {
	if model == nil {
		return nil
	}
	return &reminder.Channel{
		ID:                model.ID,
		Name:              model.Name,
		Type:              model.Type,
		DestinationID:     destination,
		LastMessageSentAt: model.LastMessageSentAt,
	}
}
