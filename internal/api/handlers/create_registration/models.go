package create_registration

import (
	createRegistration "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/create_registration"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// CreateRegistrationRequest is the HTTP request body.
type CreateRegistrationRequest struct {
	CourseDate       string `json:"courseDate"`
	ParticipantName  string `json:"participantName"`
	ParticipantEmail string `json:"participantEmail"`
	RecaptchaToken   string `json:"recaptchaToken,omitempty"`
}

// ToUseCaseRequest converts the HTTP body into the use case request.
func (r *CreateRegistrationRequest) ToUseCaseRequest() *createRegistration.Request {
	return &createRegistration.Request{
		CourseDate:       types.DateString(r.CourseDate),
		ParticipantName:  r.ParticipantName,
		ParticipantEmail: r.ParticipantEmail,
		RecaptchaToken:   r.RecaptchaToken,
	}
}

// CreateRegistrationResponse echoes the committed registration.
type CreateRegistrationResponse struct {
	ID               int64  `json:"id"`
	CourseDate       string `json:"courseDate"`
	ParticipantName  string `json:"participantName"`
	ParticipantEmail string `json:"participantEmail"`
	CreatedAt        string `json:"createdAt"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(resp *createRegistration.Response) *CreateRegistrationResponse {
	return &CreateRegistrationResponse{
		ID:               resp.ID,
		CourseDate:       resp.CourseDate.String(),
		ParticipantName:  resp.ParticipantName,
		ParticipantEmail: resp.ParticipantEmail,
		CreatedAt:        resp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
