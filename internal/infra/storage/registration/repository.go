package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/dbmetrics"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/psqlbuilder"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// uniqueViolation PostgreSQL error code for a unique constraint failure
const uniqueViolation = "23505"

// Repository provides access to the registrations table. Every store call
// runs under queryTimeout so a stalled connection surfaces as
// ErrQueryTimeout instead of hanging the request.
type Repository struct {
	db           DBExecutor
	queryTimeout time.Duration
}

// NewRepository creates a registration repository.
func NewRepository(db DBExecutor, queryTimeout time.Duration) *Repository {
	return &Repository{db: db, queryTimeout: queryTimeout}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// wrapErr wraps a store failure in the package sentinel, rewriting it to
// ErrQueryTimeout when the call's deadline expired. The context check is
// needed because drivers report cancellation with their own errors.
func wrapErr(ctx context.Context, sentinel error, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		sentinel = ErrQueryTimeout
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}

// Create inserts one registration row and fills in the store-assigned ID and
// creation timestamp. If the context carries an active transaction (put
// there by txmanager), the insert runs inside it.
//
// The schema's unique constraint on (course_date, participant_email) is the
// authoritative duplicate guard; a violation surfaces as
// ErrDuplicateRegistration even when the application-level check raced.
func (r *Repository) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Insert("registrations").
		Columns(
			"course_date",
			"participant_name",
			"participant_email",
		).
		Values(
			reg.CourseDate.String(),
			reg.ParticipantName,
			reg.ParticipantEmail,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reg.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateRegistration
		}
		return nil, wrapErr(ctx, ErrExecQuery, "Create - execute insert", err)
	}

	reg.CreatedAt = createdAt.Time

	return reg, nil
}

// CountByDate returns the committed registration count for one course date.
func (r *Repository) CountByDate(ctx context.Context, date types.DateString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("registrations").
		Where(squirrel.Eq{"course_date": date.String()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapErr(ctx, ErrScanRow, "CountByDate - scan count", err)
	}

	return count, nil
}

// ExistsByDateAndEmail reports whether a registration already exists for the
// (course date, normalized email) pair. Inside a transaction the matching
// row is locked with FOR UPDATE so the verdict holds until the caller's
// insert commits.
func (r *Repository) ExistsByDateAndEmail(ctx context.Context, date types.DateString, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("registrations").
		Where(squirrel.Eq{
			"course_date":       date.String(),
			"participant_email": email,
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByDateAndEmail - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, wrapErr(ctx, ErrScanRow, "ExistsByDateAndEmail - scan row", err)
	}

	return true, nil
}

// ListWithFilter returns registrations matching the filter, ordered by
// course date then creation time.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.RegistrationFilter) ([]*domain.Registration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	selectBuilder := psqlbuilder.Select(
		"id",
		"course_date",
		"participant_name",
		"participant_email",
		"created_at",
	).
		From("registrations").
		OrderBy("course_date ASC, created_at ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"course_date": filter.From.String()})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"course_date": filter.To.String()})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"participant_email": *filter.Email})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(ctx, ErrExecQuery, "ListWithFilter - execute query", err)
	}
	defer rows.Close()

	return r.scanRegistrations(ctx, rows)
}

// CountByDateRange returns per-date registration counts for the inclusive
// range, one aggregated read for the capacity ledger.
func (r *Repository) CountByDateRange(ctx context.Context, from, to types.DateString) (map[types.DateString]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Select("course_date", "COUNT(*)").
		From("registrations").
		Where(squirrel.GtOrEq{"course_date": from.String()}).
		Where(squirrel.LtOrEq{"course_date": to.String()}).
		GroupBy("course_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(ctx, ErrExecQuery, "CountByDateRange - execute query", err)
	}
	defer rows.Close()

	counts := make(map[types.DateString]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByDateRange - scan row: %v", ErrScanRow, err)
		}
		counts[normalizeDateColumn(date)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(ctx, ErrScanRow, "CountByDateRange - rows error", err)
	}

	return counts, nil
}

// scanRegistrations scans query results into registrations.
func (r *Repository) scanRegistrations(ctx context.Context, rows *sql.Rows) ([]*domain.Registration, error) {
	registrations := make([]*domain.Registration, 0)

	for rows.Next() {
		var reg domain.Registration
		var date string
		var createdAt sql.NullTime

		err := rows.Scan(
			&reg.ID,
			&date,
			&reg.ParticipantName,
			&reg.ParticipantEmail,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRegistrations - scan row: %v", ErrScanRow, err)
		}

		reg.CourseDate = normalizeDateColumn(date)
		reg.CreatedAt = createdAt.Time

		registrations = append(registrations, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(ctx, ErrScanRow, "scanRegistrations - rows error", err)
	}

	return registrations, nil
}

// normalizeDateColumn trims the timestamp tail lib/pq appends when a DATE
// column is scanned into a string ("2025-07-16T00:00:00Z").
func normalizeDateColumn(raw string) types.DateString {
	if len(raw) > 10 {
		raw = raw[:10]
	}
	return types.DateString(raw)
}
