package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	settingsRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/settings"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings/models"
)

type fakeRepo struct {
	stored    *domain.RecaptchaSettings
	getErr    error
	upsertErr error
	siteKey   string
	secretKey string
}

func (r *fakeRepo) Get(context.Context) (*domain.RecaptchaSettings, error) {
	return r.stored, r.getErr
}

func (r *fakeRepo) Upsert(_ context.Context, siteKey, secretKey string) (*domain.RecaptchaSettings, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.siteKey, r.secretKey = siteKey, secretKey
	return &domain.RecaptchaSettings{
		ID:        domain.RecaptchaSettingsID,
		SiteKey:   siteKey,
		SecretKey: secretKey,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSiteKey(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		svc := NewService(&fakeRepo{stored: &domain.RecaptchaSettings{SiteKey: "site-key"}}, nopLogger{})

		resp, err := svc.GetSiteKey(context.Background())
		require.NoError(t, err)
		assert.True(t, resp.Enabled)
		assert.Equal(t, "site-key", resp.SiteKey)
	})

	t.Run("absent row means disabled", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: settingsRepo.ErrSettingsNotFound}, nopLogger{})

		resp, err := svc.GetSiteKey(context.Background())
		require.NoError(t, err)
		assert.False(t, resp.Enabled)
		assert.Empty(t, resp.SiteKey)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: errors.New("connection refused")}, nopLogger{})

		_, err := svc.GetSiteKey(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("trims and stores keys", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
			SiteKey:   "  site-key  ",
			SecretKey: " secret-key ",
		})
		require.NoError(t, err)
		assert.Equal(t, "site-key", repo.siteKey)
		assert.Equal(t, "secret-key", repo.secretKey)
		assert.Equal(t, "site-key", resp.SiteKey)
	})

	t.Run("empty secret allowed", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{SiteKey: "site-key"})
		require.NoError(t, err)
		assert.Empty(t, repo.secretKey)
	})

	t.Run("empty site key rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{SiteKey: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
