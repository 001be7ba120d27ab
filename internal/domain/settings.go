package domain

import "time"

// RecaptchaSettings is the singleton verification provider configuration,
// stored under the fixed RecaptchaSettingsID. The site key is safe to expose
// to clients; the secret key must never leave the server-side validator.
//
// Absence of the row means verification is disabled system-wide, which is a
// valid state, not an error.
type RecaptchaSettings struct {
	ID        int64
	SiteKey   string
	SecretKey string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfigured reports whether client-side challenges are enabled.
func (s *RecaptchaSettings) IsConfigured() bool {
	return s != nil && s.SiteKey != ""
}

// CanValidate reports whether server-side validation is possible.
func (s *RecaptchaSettings) CanValidate() bool {
	return s != nil && s.SecretKey != ""
}
