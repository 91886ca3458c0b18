package models

import (
	"time"

	"github.com/teamboard/teamboard/internal/shared/constants"
)

type ActivityTypeModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ActivityTypeModel) TableName() string {
	return constants.TableActivityTypes
}

// ActivityModel is an activity with its type, PICs and approvers.
type ActivityModel struct {
	ID             uint               `gorm:"primaryKey"`
	Name           string             `gorm:"size:255;not null"`
	Description    string             `gorm:"type:text"`
	StartDate      time.Time          `gorm:"not null"`
	EndDate        time.Time          `gorm:"not null;index"`
	Status         string             `gorm:"size:30;not null;default:'Planned';index"`
	ActivityTypeID *uint              `gorm:"index"`
	ActivityType   *ActivityTypeModel `gorm:"foreignKey:ActivityTypeID"`
	PICs           []UserModel        `gorm:"many2many:activity_pics;joinForeignKey:ActivityID;joinReferences:UserID"`
	Approvers      []UserModel        `gorm:"many2many:activity_approvers;joinForeignKey:ActivityID;joinReferences:UserID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ActivityModel) TableName() string {
	return constants.TableActivities
}

// TaskModel is a task, optionally owned by an activity.
type TaskModel struct {
	ID         uint           `gorm:"primaryKey"`
	ActivityID *uint          `gorm:"index"`
	Activity   *ActivityModel `gorm:"foreignKey:ActivityID"`
	Name       string         `gorm:"size:255;not null"`
	EndDate    time.Time      `gorm:"not null;index"`
	Status     string         `gorm:"size:30;not null;default:'To Do';index"`
	PICs       []UserModel    `gorm:"many2many:task_pics;joinForeignKey:TaskID;joinReferences:UserID"`
	Approvers  []UserModel    `gorm:"many2many:task_approvers;joinForeignKey:TaskID;joinReferences:UserID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TaskModel) TableName() string {
	return constants.TableTasks
}
