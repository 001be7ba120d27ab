package create_registration

import "errors"

var (
	// ErrInvalidInput is returned when name, email or date is malformed.
	ErrInvalidInput = errors.New("create_registration: invalid input data")

	// ErrDateNotBookable is returned for dates outside the booking
	// window, non-operating weekdays and holidays.
	ErrDateNotBookable = errors.New("create_registration: date is not bookable")

	// ErrVerificationFailed is returned when the verification gate does
	// not pass the attempt.
	ErrVerificationFailed = errors.New("create_registration: verification failed")

	// ErrCapacityFull is returned when the date already holds the
	// maximum number of participants.
	ErrCapacityFull = errors.New("create_registration: course date is full")

	// ErrDuplicate is returned when the email is already registered for
	// the date.
	ErrDuplicate = errors.New("create_registration: email already registered for this date")

	// ErrStoreTimeout is returned when a store call exceeded its deadline,
	// so the caller can tell a slow database from a broken one.
	ErrStoreTimeout = errors.New("create_registration: store call timed out")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("create_registration: internal error")
)
