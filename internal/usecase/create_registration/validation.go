package create_registration

import (
	"fmt"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
)

// validateRequest checks the attempt and returns the normalized name
// and email used everywhere downstream.
func validateRequest(req *Request) (name, email string, err error) {
	if req == nil {
		return "", "", fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	name = domain.NormalizeName(req.ParticipantName)
	if name == "" {
		return "", "", fmt.Errorf("%w: participant name is required", ErrInvalidInput)
	}

	email = domain.NormalizeEmail(req.ParticipantEmail)
	if email == "" {
		return "", "", fmt.Errorf("%w: participant email is required", ErrInvalidInput)
	}
	if !domain.IsValidEmail(email) {
		return "", "", fmt.Errorf("%w: participant email is malformed", ErrInvalidInput)
	}

	if err := req.CourseDate.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: course date: %v", ErrInvalidInput, err)
	}

	return name, email, nil
}
