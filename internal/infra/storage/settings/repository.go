package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/dbmetrics"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/psqlbuilder"
)

// Repository provides access to the recaptcha_settings singleton row. Both
// calls run under queryTimeout; an expired deadline surfaces as
// ErrQueryTimeout.
type Repository struct {
	db           dbmetrics.DBExecutor
	queryTimeout time.Duration
}

// NewRepository creates a settings repository.
func NewRepository(db dbmetrics.DBExecutor, queryTimeout time.Duration) *Repository {
	return &Repository{db: db, queryTimeout: queryTimeout}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

func wrapErr(ctx context.Context, sentinel error, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		sentinel = ErrQueryTimeout
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}

// Get returns the singleton settings row, or ErrSettingsNotFound when
// verification has never been configured.
func (r *Repository) Get(ctx context.Context) (*domain.RecaptchaSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Select(
		"id",
		"site_key",
		"secret_key",
		"created_at",
		"updated_at",
	).
		From("recaptcha_settings").
		Where(squirrel.Eq{"id": domain.RecaptchaSettingsID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.RecaptchaSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SiteKey,
		&s.SecretKey,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, wrapErr(ctx, ErrScanRow, "Get - scan settings", err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert writes the singleton row under the fixed identifier, creating it on
// first use and replacing both keys afterwards.
func (r *Repository) Upsert(ctx context.Context, siteKey, secretKey string) (*domain.RecaptchaSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Insert("recaptcha_settings").
		Columns("id", "site_key", "secret_key").
		Values(domain.RecaptchaSettingsID, siteKey, secretKey).
		Suffix("ON CONFLICT (id) DO UPDATE SET site_key = EXCLUDED.site_key, secret_key = EXCLUDED.secret_key, updated_at = NOW()").
		Suffix("RETURNING id, site_key, secret_key, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var s domain.RecaptchaSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SiteKey,
		&s.SecretKey,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, wrapErr(ctx, ErrExecQuery, "Upsert - execute upsert", err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
