package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/mappers"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// ReminderRepositoryImpl loads enabled reminders with their parent, the
// parent's PICs and approvers, and the activity type, in one preload pass.
type ReminderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReminderMapper
	logger logger.Interface
}

func NewReminderRepository(db *gorm.DB, logger logger.Interface) reminder.ReminderRepository {
	return &ReminderRepositoryImpl{
		db:     db,
		mapper: mappers.NewReminderMapper(),
		logger: logger,
	}
}

func orderUsers(db *gorm.DB) *gorm.DB {
	return db.Order("users.id ASC")
}

func (r *ReminderRepositoryImpl) ListEnabledActivityReminders(ctx context.Context) ([]*reminder.ActivityReminder, error) {
	var modelList []*models.ActivityReminderModel

	err := r.db.WithContext(ctx).
		Preload("Activity.ActivityType").
		Preload("Activity.PICs", orderUsers).
		Preload("Activity.Approvers", orderUsers).
		Where("enabled = ?", true).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list activity reminders", "error", err)
		return nil, fmt.Errorf("failed to list activity reminders: %w", err)
	}

	return r.mapper.ActivityReminderToEntities(modelList), nil
}

func (r *ReminderRepositoryImpl) ListEnabledTaskReminders(ctx context.Context) ([]*reminder.TaskReminder, error) {
	var modelList []*models.TaskReminderModel

	err := r.db.WithContext(ctx).
		Preload("Task.Activity.ActivityType").
		Preload("Task.PICs", orderUsers).
		Preload("Task.Approvers", orderUsers).
		Where("enabled = ?", true).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list task reminders", "error", err)
		return nil, fmt.Errorf("failed to list task reminders: %w", err)
	}

	return r.mapper.TaskReminderToEntities(modelList), nil
}
