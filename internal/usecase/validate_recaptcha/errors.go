package validate_recaptcha

import "errors"

var (
	// ErrInvalidInput is returned when the request carries no token.
	ErrInvalidInput = errors.New("validate_recaptcha: invalid input data")

	// ErrNotConfigured is returned when no secret key is stored, so no
	// token can be checked.
	ErrNotConfigured = errors.New("validate_recaptcha: recaptcha is not configured")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("validate_recaptcha: internal error")
)
