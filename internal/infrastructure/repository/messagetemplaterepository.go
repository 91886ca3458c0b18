package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/mappers"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

type MessageTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MessageTemplateMapper
}

func NewMessageTemplateRepository(db *gorm.DB) reminder.TemplateRepository {
	return &MessageTemplateRepositoryImpl{
		db:     db,
		mapper: mappers.NewMessageTemplateMapper(),
	}
}

func (r *MessageTemplateRepositoryImpl) GetByID(ctx context.Context, id uint) (*reminder.MessageTemplate, error) {
	var model models.MessageTemplateModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get message template by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map message template model to entity: %w", err)
	}

	return entity, nil
}
