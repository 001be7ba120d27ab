package validate_recaptcha

import (
	"context"

	validateRecaptcha "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/validate_recaptcha"
)

// ValidateRecaptchaUseCase checks one token server-side.
type ValidateRecaptchaUseCase interface {
	Execute(ctx context.Context, req *validateRecaptcha.Request) (*validateRecaptcha.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
