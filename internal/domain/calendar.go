package domain

import (
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// CalendarRules holds the static availability rules: operating weekdays, the
// forward booking window and the holiday exclusion list. All methods are
// pure functions over an explicitly passed "now"; the rules never read the
// ambient clock, so a test can pin any instant.
type CalendarRules struct {
	OperatingDays   []time.Weekday
	HorizonDays     int
	Holidays        map[types.DateString]struct{}
	CapacityPerDate int
}

// NewCalendarRules builds CalendarRules from plain configuration values.
func NewCalendarRules(operatingDays []time.Weekday, horizonDays int, holidays []string, capacity int) CalendarRules {
	set := make(map[types.DateString]struct{}, len(holidays))
	for _, h := range holidays {
		set[types.DateString(h)] = struct{}{}
	}
	return CalendarRules{
		OperatingDays:   operatingDays,
		HorizonDays:     horizonDays,
		Holidays:        set,
		CapacityPerDate: capacity,
	}
}

// DefaultCalendarRules returns the live site's rules.
func DefaultCalendarRules() CalendarRules {
	return NewCalendarRules(DefaultOperatingDays, DefaultHorizonDays, DefaultCzechHolidays, DefaultCapacityPerDate)
}

// IsOperatingWeekday reports whether the date falls on a course day.
func (r CalendarRules) IsOperatingWeekday(date types.DateString) bool {
	weekday, err := date.Weekday()
	if err != nil {
		return false
	}
	for _, d := range r.OperatingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsHoliday reports whether the date is on the exclusion list.
func (r CalendarRules) IsHoliday(date types.DateString) bool {
	_, ok := r.Holidays[date]
	return ok
}

// WindowStart returns the first bookable date: today, in now's location.
func (r CalendarRules) WindowStart(now time.Time) types.DateString {
	return types.NewDateString(now)
}

// WindowEnd returns the last bookable date, HorizonDays after today.
// Both boundaries are inclusive.
func (r CalendarRules) WindowEnd(now time.Time) types.DateString {
	return types.NewDateString(now.AddDate(0, 0, r.HorizonDays))
}

// InBookingWindow reports whether the date lies within [today, today+horizon].
func (r CalendarRules) InBookingWindow(date types.DateString, now time.Time) bool {
	return !date.Before(r.WindowStart(now)) && !date.After(r.WindowEnd(now))
}

// IsBookable applies every static rule: valid date, operating weekday,
// inside the window, not a holiday. Capacity is not consulted here.
func (r CalendarRules) IsBookable(date types.DateString, now time.Time) bool {
	if date.Validate() != nil {
		return false
	}
	return r.IsOperatingWeekday(date) &&
		r.InBookingWindow(date, now) &&
		!r.IsHoliday(date)
}
