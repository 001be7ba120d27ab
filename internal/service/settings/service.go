package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	settingsRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/settings"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings/models"
)

// Service manages the verification key pair.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSiteKey returns the public part of the setup. A missing row means
// verification is disabled, not an error.
func (s *Service) GetSiteKey(ctx context.Context) (*models.SiteKeyResponse, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return &models.SiteKeyResponse{Enabled: false}, nil
		}
		s.logger.Error("GetSiteKey: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSiteKey - repository error: %v", ErrInternal, err)
	}

	return &models.SiteKeyResponse{
		Enabled: stored.IsConfigured(),
		SiteKey: stored.SiteKey,
	}, nil
}

// Update replaces the stored key pair through the singleton row.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	siteKey := strings.TrimSpace(req.SiteKey)
	secretKey := strings.TrimSpace(req.SecretKey)
	if siteKey == "" {
		s.logger.Warn("Update: empty site key")
		return nil, fmt.Errorf("%w: site key is required", ErrInvalidInput)
	}

	stored, err := s.settingsRepo.Upsert(ctx, siteKey, secretKey)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: verification settings replaced, server validation=%v", stored.CanValidate())
	return models.FromDomainSettings(stored), nil
}
