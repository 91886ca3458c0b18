package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

type MessageTemplateModel struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"size:100;not null"`
	Body         string         `gorm:"type:text;not null"`
	Placeholders datatypes.JSON `gorm:"column:placeholders"` // JSON array of token names
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MessageTemplateModel) TableName() string {
	return constants.TableMessageTemplates
}
