package domain

import (
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// Verdict is the ternary availability decision for a course date.
type Verdict string

const (
	// VerdictAvailable the date passes all static rules and has free spots
	VerdictAvailable Verdict = "available"
	// VerdictFull the date passes static rules but capacity is reached
	VerdictFull Verdict = "full"
	// VerdictDisallowed the date fails a static rule (weekday, window, holiday)
	VerdictDisallowed Verdict = "disallowed"
)

// ResolveAvailability decides the verdict for a date given the static rules
// and a registration count snapshot. It is the single authority consulted by
// both the calendar rendering path and the registration write path, so the
// two can never disagree.
//
// Pure over its inputs; "now" is passed in, never read ambiently.
func ResolveAvailability(date types.DateString, rules CalendarRules, count int, now time.Time) Verdict {
	if !rules.IsBookable(date, now) {
		return VerdictDisallowed
	}
	if count >= rules.CapacityPerDate {
		return VerdictFull
	}
	return VerdictAvailable
}
