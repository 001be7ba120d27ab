package settings

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)
	now := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, site_key, secret_key, created_at, updated_at FROM recaptcha_settings").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_key", "secret_key", "created_at", "updated_at"}).
			AddRow(int64(1), "site-abc", "secret-xyz", now, now))

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "site-abc", s.SiteKey)
	assert.Equal(t, "secret-xyz", s.SecretKey)
	assert.True(t, s.IsConfigured())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_AbsentRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)

	mock.ExpectQuery("SELECT id, site_key, secret_key, created_at, updated_at FROM recaptcha_settings").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_key", "secret_key", "created_at", "updated_at"}))

	_, err = repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_TimeoutMapsToSentinel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, 10*time.Millisecond)

	mock.ExpectQuery("SELECT id, site_key, secret_key, created_at, updated_at FROM recaptcha_settings").
		WithArgs(1).
		WillDelayFor(200 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_key", "secret_key", "created_at", "updated_at"}))

	_, err = repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrQueryTimeout)
}

func TestUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)
	now := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO recaptcha_settings").
		WithArgs(1, "site-new", "secret-new").
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_key", "secret_key", "created_at", "updated_at"}).
			AddRow(int64(1), "site-new", "secret-new", now, now))

	s, err := repo.Upsert(context.Background(), "site-new", "secret-new")
	require.NoError(t, err)
	assert.Equal(t, "site-new", s.SiteKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
