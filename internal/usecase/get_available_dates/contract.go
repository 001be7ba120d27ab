package get_available_dates

import (
	"context"
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// CapacityLedger serves registration counts per course date.
type CapacityLedger interface {
	GetCounts(ctx context.Context, from, to types.DateString) (map[types.DateString]int, error)
}

// TimeProvider abstracts the current time for testing.
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
