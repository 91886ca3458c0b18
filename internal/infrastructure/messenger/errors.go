package messenger

import (
	"errors"
	"fmt"

	"github.com/teamboard/teamboard/internal/domain/setting"
)

// ErrCredentialsMissing is returned when no api key / number key pair is
// configured. It aborts a dispatch run.
var ErrCredentialsMissing = setting.ErrMessengerCredentialsMissing

// APIError is a non-success response from the messaging provider.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("messenger API error %d on %s", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("messenger API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// IsAPIError reports whether err carries a provider error response.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
