package domain

import (
	"strings"
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// Registration represents one committed course booking.
//
// Invariants, enforced by the create_registration usecase and a unique
// constraint in the schema:
//   - at most CapacityPerDate rows per course date
//   - at most one row per (course date, participant email)
//
// Rows are created once and never updated; deletion is an external admin
// operation outside this service.
type Registration struct {
	ID               int64
	CourseDate       types.DateString
	ParticipantName  string
	ParticipantEmail string
	CreatedAt        time.Time
}

// NormalizeName trims surrounding whitespace from a participant name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeEmail lowercases and trims a participant email. All duplicate
// checks and stored rows use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether email has the basic local@domain shape with a
// dotted, non-empty domain. Deliverability is not checked.
func IsValidEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}
	local, dom := email[:at], email[at+1:]
	if local == "" || dom == "" {
		return false
	}
	if strings.ContainsAny(local, " \t") || strings.ContainsAny(dom, " \t") {
		return false
	}
	dot := strings.IndexByte(dom, '.')
	return dot > 0 && dot < len(dom)-1
}

// EmailOrigin groups a participant email into a reporting origin by its
// top-level domain.
func EmailOrigin(email string) string {
	normalized := NormalizeEmail(email)
	switch {
	case strings.HasSuffix(normalized, ".sk"):
		return OriginSlovakia
	case strings.HasSuffix(normalized, ".cz"):
		return OriginCzechia
	default:
		return OriginOther
	}
}
