package domain

import "time"

// Default business rule values. config.toml may override all of them; these
// mirror the live site.
const (
	DefaultCapacityPerDate = 5
	DefaultHorizonDays     = 60 // two months forward, inclusive
	DefaultCoursePriceCZK  = 5000

	DefaultCourseStart = "09:00"
	DefaultCourseEnd   = "17:00"
)

// DefaultOperatingDays course days: Wednesday through Friday.
var DefaultOperatingDays = []time.Weekday{
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// Reporting origins derived from the participant email TLD.
const (
	OriginSlovakia = "Slovensko"
	OriginCzechia  = "Česko"
	OriginOther    = "Ostatné"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RecaptchaMinScore minimum trust score accepted from the challenge
// provider. Structurally valid tokens scoring below this are rejected.
const RecaptchaMinScore = 0.5

// RecaptchaSettingsID fixed identifier of the singleton settings row.
const RecaptchaSettingsID = 1
