package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

type NotificationModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_user_read"`
	Type       string    `gorm:"size:50;not null"`
	Title      string    `gorm:"size:255;not null"`
	Message    string    `gorm:"type:text;not null"`
	TaskID     *uint     `gorm:"index"`
	ActivityID *uint     `gorm:"index"`
	IsRead     bool      `gorm:"not null;index:idx_user_read"`
	CreatedAt  time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

// NotificationPreferenceModel stores a JSON object of type -> enabled.
type NotificationPreferenceModel struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      uint           `gorm:"uniqueIndex;not null"`
	Preferences datatypes.JSON `gorm:"column:preferences"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (NotificationPreferenceModel) TableName() string {
	return constants.TableNotificationPreferences
}
