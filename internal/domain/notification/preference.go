package notification

import vo "github.com/teamboard/teamboard/internal/domain/notification/valueobjects"

// Preferences maps notification type keys to an opt-in flag. Keys that are
// absent count as enabled, so a nil map allows everything.
type Preferences map[string]bool

func (p Preferences) Allows(t vo.NotificationType) bool {
	enabled, ok := p[t.String()]
	return !ok || enabled
}
