package models

import (
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
)

// SiteKeyResponse is the public view of the verification setup. The
// secret key never leaves the server.
type SiteKeyResponse struct {
	Enabled bool   `json:"enabled"`
	SiteKey string `json:"siteKey,omitempty"`
}

// UpdateSettingsRequest replaces the stored key pair. An empty secret
// key renders the widget without enforcing server-side validation.
type UpdateSettingsRequest struct {
	SiteKey   string `json:"siteKey"`
	SecretKey string `json:"secretKey"`
}

// SettingsResponse is the admin view after an update.
type SettingsResponse struct {
	SiteKey   string    `json:"siteKey"`
	SecretKey string    `json:"secretKey"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainSettings converts the stored row into the admin view.
func FromDomainSettings(s *domain.RecaptchaSettings) *SettingsResponse {
	return &SettingsResponse{
		SiteKey:   s.SiteKey,
		SecretKey: s.SecretKey,
		UpdatedAt: s.UpdatedAt,
	}
}
