package models

import (
	"time"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

// ChannelModel is a messaging group. GroupID is stored encrypted.
type ChannelModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:100;not null"`
	Type              string `gorm:"size:100;not null;index"`
	GroupID           string `gorm:"column:group_id;type:text;not null"`
	LastMessageSentAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ChannelModel) TableName() string {
	return constants.TableChannels
}
