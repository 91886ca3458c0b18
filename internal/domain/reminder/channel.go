package reminder

import "time"

// Channel is a messaging-group destination. DestinationID is already
// decrypted by the repository that loaded it.
type Channel struct {
	ID                uint
	Name              string
	Type              string
	DestinationID     string
	LastMessageSentAt *time.Time
}

// DispatchItem is one rendered, channel-resolved message awaiting delivery.
// It lives only for the duration of a run.
type DispatchItem struct {
	ChannelID     uint
	DestinationID string
	Message       string
	Label         string
}
