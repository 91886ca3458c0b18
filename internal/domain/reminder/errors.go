package reminder

import "errors"

var (
	// ErrRunInProgress is returned when another run holds the reminder lease.
	ErrRunInProgress = errors.New("reminder run already in progress")
	// ErrChannelNotFound is returned when no channel matches a logical name.
	ErrChannelNotFound = errors.New("reminder channel not found")
)
