package registrations

import (
	"context"
	"fmt"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/registrations/models"
)

// Service serves the admin participant listing.
type Service struct {
	registrationRepo RegistrationRepository
	logger           Logger
}

func NewService(registrationRepo RegistrationRepository, logger Logger) *Service {
	return &Service{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// List returns registrations matching the filter, ordered by course
// date and creation time.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	if req == nil {
		req = &models.ListRequest{}
	}
	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	rows, err := s.registrationRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	out := make([]models.ParticipantResponse, 0, len(rows))
	for _, reg := range rows {
		out = append(out, models.FromDomainRegistration(reg))
	}

	s.logger.Info("List: returned %d registrations", len(out))
	return &models.ListResponse{Registrations: out, Total: len(out)}, nil
}

func validateListRequest(req *models.ListRequest) error {
	if req.From != nil {
		if err := req.From.Validate(); err != nil {
			return fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
	}
	if req.To != nil {
		if err := req.To.Validate(); err != nil {
			return fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return fmt.Errorf("%w: to precedes from", ErrInvalidInput)
	}
	return nil
}
