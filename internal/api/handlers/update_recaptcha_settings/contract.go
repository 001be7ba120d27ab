package update_recaptcha_settings

import (
	"context"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings/models"
)

// SettingsService replaces the stored verification key pair.
type SettingsService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
