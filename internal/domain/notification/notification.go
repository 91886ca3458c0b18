package notification

import (
	"fmt"
	"time"

	vo "github.com/teamboard/teamboard/internal/domain/notification/valueobjects"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 5000
)

// Notification is an in-app message shown to a single user.
type Notification struct {
	id               uint
	userID           uint
	notificationType vo.NotificationType
	title            string
	message          string
	taskID           *uint
	activityID       *uint
	readStatus       vo.ReadStatus
	createdAt        time.Time
}

func NewNotification(
	userID uint,
	notificationType vo.NotificationType,
	title string,
	message string,
	taskID *uint,
	activityID *uint,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Notification{
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		taskID:           taskID,
		activityID:       activityID,
		readStatus:       vo.ReadStatusUnread,
		createdAt:        time.Now().UTC(),
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id uint,
	userID uint,
	notificationType vo.NotificationType,
	title string,
	message string,
	taskID *uint,
	activityID *uint,
	readStatus vo.ReadStatus,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !readStatus.IsValid() {
		return nil, fmt.Errorf("invalid read status: %s", readStatus)
	}

	return &Notification{
		id:               id,
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		taskID:           taskID,
		activityID:       activityID,
		readStatus:       readStatus,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint                  { return n.id }
func (n *Notification) UserID() uint              { return n.userID }
func (n *Notification) Type() vo.NotificationType { return n.notificationType }
func (n *Notification) Title() string             { return n.title }
func (n *Notification) Message() string           { return n.message }
func (n *Notification) TaskID() *uint             { return n.taskID }
func (n *Notification) ActivityID() *uint         { return n.activityID }
func (n *Notification) ReadStatus() vo.ReadStatus { return n.readStatus }
func (n *Notification) IsRead() bool              { return n.readStatus.IsRead() }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkAsRead() {
	n.readStatus = vo.ReadStatusRead
}
