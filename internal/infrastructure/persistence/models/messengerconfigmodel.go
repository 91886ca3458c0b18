package models

import (
	"time"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

type MessengerConfigModel struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"column:config_key;size:50;uniqueIndex;not null"`
	APIKey    string    `gorm:"column:api_key;type:text;not null"`
	NumberKey string    `gorm:"column:number_key;size:50;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MessengerConfigModel) TableName() string {
	return constants.TableMessengerConfigs
}

// ReminderRunLeaseModel is one row per lease name; Holder is the uuid token
// of the current owner.
type ReminderRunLeaseModel struct {
	Name       string    `gorm:"primaryKey;size:100"`
	Holder     string    `gorm:"size:64;not null"`
	AcquiredAt time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

func (ReminderRunLeaseModel) TableName() string {
	return constants.TableReminderRunLeases
}
