package validate_recaptcha

import (
	"context"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/integrations/recaptcha"
)

// SettingsRepository reads the stored reCAPTCHA key pair.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.RecaptchaSettings, error)
}

// VerifyClient talks to the siteverify endpoint.
type VerifyClient interface {
	Verify(ctx context.Context, secretKey, token string) (*recaptcha.VerifyResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
