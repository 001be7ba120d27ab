package registration

import "errors"

var (
	// ErrQueryTimeout is returned when a store call exceeds its deadline
	ErrQueryTimeout = errors.New("registration.repository: query timed out")

	// ErrDuplicateRegistration is returned when the unique constraint on
	// (course_date, participant_email) rejects an insert
	ErrDuplicateRegistration = errors.New("registration.repository: duplicate registration for date and email")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("registration.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("registration.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("registration.repository: failed to scan row")
)
