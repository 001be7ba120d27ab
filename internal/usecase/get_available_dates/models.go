package get_available_dates

import (
	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// Request bounds the queried range. Empty From/To default to the full
// booking window; the range is clamped to the window either way.
type Request struct {
	From types.DateString
	To   types.DateString
}

// Response lists the per-date verdicts over the effective range along
// with the course details the booking page renders.
type Response struct {
	WindowStart     types.DateString `json:"windowStart"`
	WindowEnd       types.DateString `json:"windowEnd"`
	CapacityPerDate int              `json:"capacityPerDate"`
	CourseStart     types.TimeString `json:"courseStart"`
	CourseEnd       types.TimeString `json:"courseEnd"`
	Dates           []DateInfo       `json:"dates"`
}

// DateInfo is the verdict for one course date.
type DateInfo struct {
	Date            types.DateString `json:"date"`
	Status          domain.Verdict   `json:"status"`
	RegisteredCount int              `json:"registeredCount"`
	AvailableSpots  int              `json:"availableSpots"`
}
