package registrations

import (
	"context"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
)

// RegistrationRepository reads persisted registrations.
type RegistrationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.RegistrationFilter) ([]*domain.Registration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
