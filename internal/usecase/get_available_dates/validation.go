package get_available_dates

import (
	"fmt"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.From.IsZero() {
		if err := req.From.Validate(); err != nil {
			return fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
	}
	if !req.To.IsZero() {
		if err := req.To.Validate(); err != nil {
			return fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
	}
	if !req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From) {
		return fmt.Errorf("%w: to precedes from", ErrInvalidInput)
	}

	return nil
}

// clampRange narrows the requested range to the booking window. The
// second return value is false when the ranges do not overlap at all.
func clampRange(from, to, windowStart, windowEnd types.DateString) (types.DateString, types.DateString, bool) {
	if from.IsZero() || from.Before(windowStart) {
		from = windowStart
	}
	if to.IsZero() || to.After(windowEnd) {
		to = windowEnd
	}
	if to.Before(from) {
		return "", "", false
	}
	return from, to, true
}
