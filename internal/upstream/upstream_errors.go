package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("upstream: base url is not configured")
	ErrRejected      = errors.New("upstream: response envelope reported failure")
	ErrShape         = errors.New("upstream: unexpected response shape")
)

// StatusError is a non-2xx answer. Only 5xx answers are retried.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: %s returned status %d", e.Path, e.StatusCode)
}

func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500
}
