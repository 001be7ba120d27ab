package capacity

import (
	"context"
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// RegistrationStore is the bounded-range read surface the ledger refreshes
// from. One refresh is exactly one store call.
type RegistrationStore interface {
	CountByDateRange(ctx context.Context, from, to types.DateString) (map[types.DateString]int, error)
}

// Clock provides the current time (injectable for tests).
type Clock interface {
	Now() time.Time
}

// Logger is the logging interface expected by the ledger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock is the production Clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
