package settings

import "errors"

var (
	// ErrInvalidInput is returned when the submitted keys are unusable.
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("settings: internal error")
)
