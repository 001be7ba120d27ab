package create_registration

import (
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// Request is one registration attempt. RecaptchaToken may be empty
// when verification is disabled.
type Request struct {
	CourseDate       types.DateString
	ParticipantName  string
	ParticipantEmail string
	RecaptchaToken   string
}

// Response echoes the committed registration with normalized fields.
type Response struct {
	ID               int64            `json:"id"`
	CourseDate       types.DateString `json:"courseDate"`
	ParticipantName  string           `json:"participantName"`
	ParticipantEmail string           `json:"participantEmail"`
	CreatedAt        time.Time        `json:"createdAt"`
}
