package models

import (
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// ListRequest filters the participant listing. All fields optional.
type ListRequest struct {
	From  *types.DateString `json:"from,omitempty"`
	To    *types.DateString `json:"to,omitempty"`
	Email *string           `json:"email,omitempty"`
}

// ToDomainFilter converts the request into the repository filter.
func (r *ListRequest) ToDomainFilter() domain.RegistrationFilter {
	filter := domain.RegistrationFilter{
		From: r.From,
		To:   r.To,
	}
	if r.Email != nil {
		normalized := domain.NormalizeEmail(*r.Email)
		filter.Email = &normalized
	}
	return filter
}

// ParticipantResponse is one row of the admin listing.
type ParticipantResponse struct {
	ID               int64            `json:"id"`
	CourseDate       types.DateString `json:"courseDate"`
	ParticipantName  string           `json:"participantName"`
	ParticipantEmail string           `json:"participantEmail"`
	Origin           string           `json:"origin"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// ListResponse is the full admin listing, ordered by course date.
type ListResponse struct {
	Registrations []ParticipantResponse `json:"registrations"`
	Total         int                   `json:"total"`
}

// FromDomainRegistration converts a domain row into the listing shape.
func FromDomainRegistration(reg *domain.Registration) ParticipantResponse {
	return ParticipantResponse{
		ID:               reg.ID,
		CourseDate:       reg.CourseDate,
		ParticipantName:  reg.ParticipantName,
		ParticipantEmail: reg.ParticipantEmail,
		Origin:           domain.EmailOrigin(reg.ParticipantEmail),
		CreatedAt:        reg.CreatedAt,
	}
}
