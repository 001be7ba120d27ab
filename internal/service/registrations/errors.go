package registrations

import "errors"

var (
	// ErrInvalidInput is returned for a malformed listing filter.
	ErrInvalidInput = errors.New("registrations: invalid input data")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("registrations: internal error")
)
