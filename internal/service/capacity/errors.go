package capacity

import "errors"

var (
	// ErrCountUnavailable is returned when a count is requested, the cache
	// holds nothing usable for the date and the store read failed. Callers
	// must treat the date as unavailable, never as empty.
	ErrCountUnavailable = errors.New("capacity.ledger: registration count unavailable")

	// ErrRefreshFailed is returned when a range refresh could not read the
	// store; any previously cached entries are kept as-is.
	ErrRefreshFailed = errors.New("capacity.ledger: refresh failed")
)
