package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicate is returned by Store.Save when a posting with the same ID or
// link already exists. Callers treat it as a routine skip.
var ErrDuplicate = errors.New("posting already stored")

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
