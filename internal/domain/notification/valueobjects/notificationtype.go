package valueobjects

import "fmt"

// NotificationType is also the key in a user's notification preference map.
type NotificationType string

const (
	NotificationTypeDeadlineAlert   NotificationType = "deadlineAlert"
	NotificationTypeTaskAssigned    NotificationType = "taskAssigned"
	NotificationTypeApprovalRequest NotificationType = "approvalRequest"
	NotificationTypeStatusChanged   NotificationType = "statusChanged"
	NotificationTypeSystem          NotificationType = "system"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeDeadlineAlert:   true,
	NotificationTypeTaskAssigned:    true,
	NotificationTypeApprovalRequest: true,
	NotificationTypeStatusChanged:   true,
	NotificationTypeSystem:          true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func (t NotificationType) IsDeadlineAlert() bool {
	return t == NotificationTypeDeadlineAlert
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
