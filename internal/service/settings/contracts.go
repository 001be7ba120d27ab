package settings

import (
	"context"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
)

// SettingsRepository stores the singleton reCAPTCHA key pair.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.RecaptchaSettings, error)
	Upsert(ctx context.Context, siteKey, secretKey string) (*domain.RecaptchaSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
