package registration

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/ptr"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/simpletxmanager"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)
	createdAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO registrations").
		WithArgs("2025-07-16", "Jana Nováková", "jana@example.cz").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	reg, err := repo.Create(context.Background(), &domain.Registration{
		CourseDate:       "2025-07-16",
		ParticipantName:  "Jana Nováková",
		ParticipantEmail: "jana@example.cz",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), reg.ID)
	assert.Equal(t, createdAt, reg.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationMapsToDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)

	mock.ExpectQuery("INSERT INTO registrations").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(context.Background(), &domain.Registration{
		CourseDate:       "2025-07-16",
		ParticipantName:  "Jana",
		ParticipantEmail: "jana@example.cz",
	})

	assert.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations`).
		WithArgs("2025-07-16").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByDate(context.Background(), "2025-07-16")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByDateAndEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)

	// Eq map keys are rendered sorted: course_date before participant_email.
	mock.ExpectQuery("SELECT 1 FROM registrations").
		WithArgs("2025-07-16", "jana@example.cz").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByDateAndEmail(context.Background(), "2025-07-16", "jana@example.cz")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT 1 FROM registrations").
		WithArgs("2025-07-16", "nobody@example.cz").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	exists, err = repo.ExistsByDateAndEmail(context.Background(), "2025-07-16", "nobody@example.cz")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByDateAndEmail_LocksRowInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM registrations.*FOR UPDATE").
		WithArgs("2025-07-16", "jana@example.cz").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectCommit()

	tm := simpletxmanager.NewTransactionManager(db)
	err = tm.DoSerializable(context.Background(), func(txCtx context.Context) error {
		exists, err := repo.ExistsByDateAndEmail(txCtx, "2025-07-16", "jana@example.cz")
		require.NoError(t, err)
		assert.True(t, exists)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryTimeoutMapsToSentinel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, 10*time.Millisecond)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations`).
		WithArgs("2025-07-16").
		WillDelayFor(200 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err = repo.CountByDate(context.Background(), "2025-07-16")
	assert.ErrorIs(t, err, ErrQueryTimeout)
}

func TestCountByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)

	mock.ExpectQuery("SELECT course_date, COUNT").
		WithArgs("2025-07-01", "2025-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"course_date", "count"}).
			AddRow("2025-07-16T00:00:00Z", 5).
			AddRow("2025-07-17", 2))

	counts, err := repo.CountByDateRange(context.Background(), "2025-07-01", "2025-08-31")
	require.NoError(t, err)
	assert.Equal(t, map[types.DateString]int{
		"2025-07-16": 5,
		"2025-07-17": 2,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db, time.Second)
	createdAt := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, course_date, participant_name, participant_email, created_at FROM registrations").
		WithArgs("2025-07-01", "2025-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_date", "participant_name", "participant_email", "created_at"}).
			AddRow(int64(1), "2025-07-16T00:00:00Z", "Jana", "jana@example.cz", createdAt).
			AddRow(int64(2), "2025-07-17T00:00:00Z", "Petr", "petr@example.sk", createdAt))

	regs, err := repo.ListWithFilter(context.Background(), domain.RegistrationFilter{
		From: ptr.Ptr(types.DateString("2025-07-01")),
		To:   ptr.Ptr(types.DateString("2025-08-31")),
	})

	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, types.DateString("2025-07-16"), regs[0].CourseDate)
	assert.Equal(t, "petr@example.sk", regs[1].ParticipantEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
