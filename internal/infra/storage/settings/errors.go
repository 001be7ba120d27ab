package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the singleton row is absent.
	// Callers treat this as "verification disabled", not as a failure.
	ErrSettingsNotFound = errors.New("settings.repository: recaptcha settings not found")

	// ErrQueryTimeout is returned when a store call exceeds its deadline
	ErrQueryTimeout = errors.New("settings.repository: query timed out")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
