package models

import (
	"time"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

// UserModel is the read side of the users table the reminder engine
// needs: identity and display name.
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"`
	Role      string    `gorm:"size:20;not null;default:'Member'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
