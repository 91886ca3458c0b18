package setting

import "errors"

// ErrMessengerCredentialsMissing is returned when neither the database nor
// the environment supplies a complete messenger credential.
var ErrMessengerCredentialsMissing = errors.New("messenger credentials are not configured")
