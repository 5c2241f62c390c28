// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrUnavailable indicates a transient store failure that the caller may retry.
	ErrUnavailable = errors.New("temporarily unavailable")
)
