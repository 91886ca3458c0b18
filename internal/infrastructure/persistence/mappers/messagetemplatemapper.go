package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

type MessageTemplateMapper interface {
	ToEntity(model *models.MessageTemplateModel) (*reminder.MessageTemplate, error)
	ToModel(entity *reminder.MessageTemplate) (*models.MessageTemplateModel, error)
}

type MessageTemplateMapperImpl struct{}

func NewMessageTemplateMapper() MessageTemplateMapper {
	return &MessageTemplateMapperImpl{}
}

func (m *MessageTemplateMapperImpl) ToEntity(model *models.MessageTemplateModel) (*reminder.MessageTemplate, error) {
	if model == nil {
		return nil, nil
	}

	var placeholders []string
	if len(model.Placeholders) > 0 {
		if err := json.Unmarshal(model.Placeholders, &placeholders); err != nil {
			return nil, fmt.Errorf("failed to unmarshal template placeholders: %w", err)
		}
	}

	return &reminder.MessageTemplate{
		ID:           model.ID,
		Name:         model.Name,
		Body:         model.Body,
		Placeholders: placeholders,
	}, nil
}

// ToModel derives the placeholder list from the body when the entity does
// not carry one.
func (m *MessageTemplateMapperImpl) ToModel(entity *reminder.MessageTemplate) (*models.MessageTemplateModel, error) {
	if entity == nil {
		return nil, nil
	}

	placeholders := entity.Placeholders
	if len(placeholders) == 0 {
		placeholders = reminder.Placeholders(entity.Body)
	}
	raw, err := json.Marshal(placeholders)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template placeholders: %w", err)
	}

	return &models.MessageTemplateModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Body:         entity.Body,
		Placeholders: datatypes.JSON(raw),
	}, nil
}
