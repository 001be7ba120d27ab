package get_statistics

import "errors"

var (
	// ErrInvalidInput is returned when the requested range is malformed.
	ErrInvalidInput = errors.New("get_statistics: invalid input data")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("get_statistics: internal error")
)
