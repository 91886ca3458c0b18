package mappers

import (
	"github.com/teamboard/teamboard/internal/domain/setting"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

type MessengerConfigMapper interface {
	ToEntity(model *models.MessengerConfigModel) *setting.MessengerConfig
	ToModel(entity *setting.MessengerConfig) *models.MessengerConfigModel
}

type MessengerConfigMapperImpl struct{}

func NewMessengerConfigMapper() MessengerConfigMapper {
	return &MessengerConfigMapperImpl{}
}

func (m *MessengerConfigMapperImpl) ToEntity(model *models.MessengerConfigModel) *setting.MessengerConfig {
	if model == nil {
		return nil
	}
	return &setting.MessengerConfig{
		ID:              model.ID,
		Key:             model.Key,
		EncryptedAPIKey: model.APIKey,
		NumberKey:       model.NumberKey,
		UpdatedAt:       model.UpdatedAt,
	}
}

func (m *MessengerConfigMapperImpl) ToModel(entity *setting.MessengerConfig) *models.MessengerConfigModel {
	if entity == nil {
		return nil
	}
	return &models.MessengerConfigModel{
		ID:        entity.ID,
		Key:       entity.Key,
		APIKey:    entity.EncryptedAPIKey,
		NumberKey: entity.NumberKey,
		UpdatedAt: entity.UpdatedAt,
	}
}
