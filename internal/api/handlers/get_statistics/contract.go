package get_statistics

import (
	"context"

	getStatistics "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/get_statistics"
)

// GetStatisticsUseCase aggregates the admin dashboard numbers.
type GetStatisticsUseCase interface {
	Execute(ctx context.Context, req *getStatistics.Request) (*getStatistics.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
