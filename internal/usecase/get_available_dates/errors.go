package get_available_dates

import "errors"

var (
	// ErrInvalidInput is returned when the requested range is malformed.
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrCountsUnavailable is returned when registration counts cannot
	// be read. Availability is never reported without counts.
	ErrCountsUnavailable = errors.New("get_available_dates: registration counts unavailable")
)
