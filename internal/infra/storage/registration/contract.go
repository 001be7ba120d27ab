package registration

import (
	"context"
	"database/sql"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner opens transactions; satisfied by *sql.DB via dbmetrics and by
// *dbmetrics.DB directly.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
