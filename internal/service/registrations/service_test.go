package registrations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/registrations/models"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/ptr"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

type fakeRepo struct {
	rows   []*domain.Registration
	err    error
	filter domain.RegistrationFilter
}

func (r *fakeRepo) ListWithFilter(_ context.Context, filter domain.RegistrationFilter) ([]*domain.Registration, error) {
	r.filter = filter
	return r.rows, r.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList_MapsRowsWithOrigin(t *testing.T) {
	repo := &fakeRepo{rows: []*domain.Registration{
		{
			ID:               1,
			CourseDate:       "2025-03-12",
			ParticipantName:  "Janka Nováková",
			ParticipantEmail: "janka@example.sk",
			CreatedAt:        time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:               2,
			CourseDate:       "2025-03-13",
			ParticipantName:  "Petr Svoboda",
			ParticipantEmail: "petr@example.cz",
			CreatedAt:        time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:               3,
			CourseDate:       "2025-03-13",
			ParticipantName:  "John Doe",
			ParticipantEmail: "john@example.com",
			CreatedAt:        time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, domain.OriginSlovakia, resp.Registrations[0].Origin)
	assert.Equal(t, domain.OriginCzechia, resp.Registrations[1].Origin)
	assert.Equal(t, domain.OriginOther, resp.Registrations[2].Origin)
}

func TestList_NormalizesEmailFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{
		From:  ptr.Ptr(types.DateString("2025-03-01")),
		To:    ptr.Ptr(types.DateString("2025-03-31")),
		Email: ptr.Ptr(" Janka@Example.SK "),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.filter.Email)
	assert.Equal(t, "janka@example.sk", *repo.filter.Email)
	assert.Equal(t, types.DateString("2025-03-01"), *repo.filter.From)
}

func TestList_InvalidRange(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{
		From: ptr.Ptr(types.DateString("2025-03-31")),
		To:   ptr.Ptr(types.DateString("2025-03-01")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
