package types

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat layout for calendar dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"

var (
	// ErrInvalidDateString is returned for a malformed calendar date
	ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// DateString represents a single calendar day as "YYYY-MM-DD".
//
// The key is always derived from the local year/month/day components of a
// time.Time, never from a UTC-normalized timestamp. Converting to UTC first
// shifts dates picked near local midnight onto the previous or next day,
// which is exactly the class of bug this type exists to rule out.
type DateString string

// NewDateString builds a DateString from the local calendar components of t.
func NewDateString(t time.Time) DateString {
	year, month, day := t.Date()
	return DateString(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string.
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(s), nil
}

// String returns the date as "YYYY-MM-DD".
func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the date is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks the "YYYY-MM-DD" format.
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time returns the date as a time.Time at midnight in loc.
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Weekday returns the day of week for the date.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t.Weekday(), nil
}

// AddDays returns the date shifted by the given number of days.
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// Before reports whether d sorts before other. Valid DateStrings compare
// correctly as plain strings because the layout is fixed-width big-endian.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After reports whether d sorts after other.
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}
