package get_statistics

import (
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// Request bounds the reported range. Empty From/To default to the
// booking window.
type Request struct {
	From types.DateString
	To   types.DateString
}

// DateStats is the occupancy of one course date.
type DateStats struct {
	Date            types.DateString `json:"date"`
	RegisteredCount int              `json:"registeredCount"`
	AvailableSpots  int              `json:"availableSpots"`
}

// Response aggregates occupancy, origin breakdown and revenue over the
// effective range. Origins maps country labels to participant counts.
type Response struct {
	WindowStart        types.DateString `json:"windowStart"`
	WindowEnd          types.DateString `json:"windowEnd"`
	CapacityPerDate    int              `json:"capacityPerDate"`
	TotalRegistrations int              `json:"totalRegistrations"`
	CoursePriceCZK     int              `json:"coursePriceCzk"`
	TotalRevenueCZK    int              `json:"totalRevenueCzk"`
	Dates              []DateStats      `json:"dates"`
	Origins            map[string]int   `json:"origins"`
}
