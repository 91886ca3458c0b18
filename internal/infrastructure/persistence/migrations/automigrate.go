// Package migrations lists the gorm models that make up the schema, for
// drivers migrated with gorm's AutoMigrate instead of SQL scripts.
package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

// Models returns every persisted model in dependency order.
func Models() []any {
	return []any{
		&models.UserModel{},
		&models.ActivityTypeModel{},
		&models.ActivityModel{},
		&models.TaskModel{},
		&models.MessageTemplateModel{},
		&models.ActivityReminderModel{},
		&models.TaskReminderModel{},
		&models.ChannelModel{},
		&models.NotificationModel{},
		&models.NotificationPreferenceModel{},
		&models.MessengerConfigModel{},
		&models.ReminderRunLeaseModel{},
	}
}

// AutoMigrate creates or updates every table, including the many2many join
// tables for PICs and approvers.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	return nil
}
