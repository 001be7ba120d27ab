package get_recaptcha_config

import (
	"context"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings/models"
)

// SettingsService exposes the public part of the verification setup.
type SettingsService interface {
	GetSiteKey(ctx context.Context) (*models.SiteKeyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
