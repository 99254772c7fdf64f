package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNotFound is returned when a resource doesn't exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (connection errors, non-404 error statuses).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a non-200 response. It unwraps to [ErrNotFound] for
// 404 and to [ErrNetwork] otherwise, so callers can either match the
// sentinel or extract the exact status with errors.As.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d", e.Unwrap(), e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrNetwork
}

// NewHTTPClient creates an HTTP client. A zero timeout means requests only
// end when their context is cancelled.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
