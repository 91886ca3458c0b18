package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamboard/teamboard/internal/domain/setting"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/mappers"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

type MessengerConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MessengerConfigMapper
	logger logger.Interface
}

func NewMessengerConfigRepository(db *gorm.DB, logger logger.Interface) setting.MessengerConfigRepository {
	return &MessengerConfigRepositoryImpl{
		db:     db,
		mapper: mappers.NewMessengerConfigMapper(),
		logger: logger,
	}
}

func (r *MessengerConfigRepositoryImpl) GetByKey(ctx context.Context, key string) (*setting.MessengerConfig, error) {
	var model models.MessengerConfigModel

	if err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get messenger config", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get messenger config: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Upsert creates or replaces the record identified by cfg.Key.
func (r *MessengerConfigRepositoryImpl) Upsert(ctx context.Context, cfg *setting.MessengerConfig) error {
	model := r.mapper.ToModel(cfg)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"api_key", "number_key", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert messenger config", "key", cfg.Key, "error", err)
		return fmt.Errorf("failed to upsert messenger config: %w", err)
	}

	if cfg.ID == 0 {
		cfg.ID = model.ID
	}
	cfg.UpdatedAt = model.UpdatedAt

	return nil
}
