package common

import (
	"fmt"
	"net/http"
)

// RemoteError describes a non-success response from a remote system that
// does not map to one of the dedicated sentinels. Status keeps the HTTP
// status code so callers can decide between retrying authentication and
// showing a generic failure.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: status %d: %s", e.Status, e.Message)
}

// ErrorFromStatus converts an HTTP status code into the matching error
// kind. Statuses with a dedicated sentinel return it so callers can match
// with errors.Is; everything else becomes a *RemoteError.
func ErrorFromStatus(status int, message string) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &RemoteError{Status: status, Message: message}
	}
}
