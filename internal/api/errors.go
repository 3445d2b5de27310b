package api

import (
	"errors"
	"fmt"
)

// NetworkError is a transport-level failure reaching the backend. The
// message is surfaced verbatim to the coordinator; existing state is left
// untouched.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// BackendError carries a non-success status and the backend's message
// payload. Treated the same as a NetworkError for state transitions.
type BackendError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
}

// IsBackendError reports whether err (or anything it wraps) is a
// backend-reported failure rather than a transport one.
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
