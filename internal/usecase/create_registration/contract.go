package create_registration

import (
	"context"
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/verification"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// RegistrationRepository persists course registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *domain.Registration) (*domain.Registration, error)
	CountByDate(ctx context.Context, date types.DateString) (int, error)
	ExistsByDateAndEmail(ctx context.Context, date types.DateString, email string) (bool, error)
}

// SettingsRepository reads the reCAPTCHA key pair; registration runs
// without verification when no usable secret is stored.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.RecaptchaSettings, error)
}

// TokenValidator performs the server-side token check for the
// verification gate.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (verification.Outcome, error)
}

// CapacityLedger lets a committed registration drop the cached count
// for its date.
type CapacityLedger interface {
	Invalidate(date types.DateString)
}

// TransactionManager runs the capacity check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
