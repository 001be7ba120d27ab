package get_participants

import (
	"context"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/registrations/models"
)

// RegistrationsService serves the admin participant listing.
type RegistrationsService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
