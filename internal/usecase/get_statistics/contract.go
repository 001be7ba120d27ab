package get_statistics

import (
	"context"
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
)

// RegistrationRepository reads persisted registrations.
type RegistrationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.RegistrationFilter) ([]*domain.Registration, error)
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
