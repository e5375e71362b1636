package record

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrAuthentication = errors.New("authentication required")
	ErrValidation     = errors.New("validation failed")
)

// statusLabels are the human-readable labels attached to recognized
// failure statuses. Unrecognized statuses carry an empty label.
var statusLabels = map[int]string{
	403: "FORBIDDEN",
	404: "NOT FOUND",
	500: "INTERNAL SERVER ERROR",
	503: "SERVICE UNAVAILABLE",
	504: "SERVER TIMEOUT",
}

// RemoteError is returned when the server answers with a status code
// outside the allow-list for the request method. It is never retried.
type RemoteError struct {
	StatusCode int
	Label      string
}

func NewRemoteError(status int) *RemoteError {
	return &RemoteError{StatusCode: status, Label: statusLabels[status]}
}

func (e *RemoteError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("http response failed: %d", e.StatusCode)
	}
	return fmt.Sprintf("http response failed: %d %s", e.StatusCode, e.Label)
}
