package recaptcha

import "errors"

var (
	// ErrInternal is returned for transport-level failures
	ErrInternal = errors.New("recaptcha.client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("recaptcha.client: invalid provider response")

	// ErrTimeout is returned when the verification round-trip exceeds its
	// deadline
	ErrTimeout = errors.New("recaptcha.client: verification request timed out")
)
