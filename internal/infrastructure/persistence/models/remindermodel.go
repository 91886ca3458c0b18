package models

import (
	"time"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

type ActivityReminderModel struct {
	ID            uint           `gorm:"primaryKey"`
	ActivityID    uint           `gorm:"not null;index"`
	Activity      *ActivityModel `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	Trigger       string         `gorm:"column:trigger_type;size:20;not null"`
	CustomDays    *int
	Channel       string  `gorm:"size:100;not null"`
	TemplateID    *uint   `gorm:"index"`
	CustomMessage *string `gorm:"type:text"`
	Enabled       bool    `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ActivityReminderModel) TableName() string {
	return constants.TableActivityReminders
}

type TaskReminderModel struct {
	ID            uint       `gorm:"primaryKey"`
	TaskID        uint       `gorm:"not null;index"`
	Task          *TaskModel `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Trigger       string     `gorm:"column:trigger_type;size:20;not null"`
	CustomDays    *int
	Channel       string  `gorm:"size:100;not null"`
	TemplateID    *uint   `gorm:"index"`
	CustomMessage *string `gorm:"type:text"`
	Enabled       bool    `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TaskReminderModel) TableName() string {
	return constants.TableTaskReminders
}
