// Package setting holds runtime configuration records editable by admins.
package setting

import "time"

// DefaultMessengerConfigKey is the key of the record the messenger reads.
const DefaultMessengerConfigKey = "default"

// MessengerConfig is the stored messaging-provider account. APIKey is kept
// encrypted at rest; repositories return it as stored.
type MessengerConfig struct {
	ID              uint
	Key             string
	EncryptedAPIKey string
	NumberKey       string
	UpdatedAt       time.Time
}

// MessengerCredential is a decrypted, ready-to-use credential pair.
type MessengerCredential struct {
	APIKey    string
	NumberKey string
	Source    string // "database" or "environment"
}

// IsComplete reports whether both parts of the credential are present.
func (c MessengerCredential) IsComplete() bool {
	return c.APIKey != "" && c.NumberKey != ""
}
