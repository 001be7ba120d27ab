package get_available_dates

import (
	"context"
	"fmt"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// UseCase resolves the per-date availability verdicts shown to
// visitors. It uses the same domain resolver as the registration path,
// so what is rendered and what is accepted cannot drift apart.
type UseCase struct {
	rules        domain.CalendarRules
	ledger       CapacityLedger
	courseStart  types.TimeString
	courseEnd    types.TimeString
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(rules domain.CalendarRules, ledger CapacityLedger, courseStart, courseEnd types.TimeString, logger Logger) *UseCase {
	return &UseCase{
		rules:        rules,
		ledger:       ledger,
		courseStart:  courseStart,
		courseEnd:    courseEnd,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute resolves verdicts for the requested range clamped to the
// booking window. A ledger failure aborts the whole request: dates are
// never reported available on missing counts.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	windowStart := uc.rules.WindowStart(now)
	windowEnd := uc.rules.WindowEnd(now)

	from, to, ok := clampRange(req.From, req.To, windowStart, windowEnd)
	if !ok {
		uc.logger.Info("GetAvailableDates: range %s..%s outside window %s..%s",
			req.From, req.To, windowStart, windowEnd)
		return &Response{
			WindowStart:     windowStart,
			WindowEnd:       windowEnd,
			CapacityPerDate: uc.rules.CapacityPerDate,
			CourseStart:     uc.courseStart,
			CourseEnd:       uc.courseEnd,
			Dates:           []DateInfo{},
		}, nil
	}

	counts, err := uc.ledger.GetCounts(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to load counts for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: %v", ErrCountsUnavailable, err)
	}

	dates := make([]DateInfo, 0, 64)
	for date := from; !date.After(to); {
		count := counts[date]
		verdict := domain.ResolveAvailability(date, uc.rules, count, now)

		spots := 0
		if verdict == domain.VerdictAvailable {
			spots = uc.rules.CapacityPerDate - count
		}

		dates = append(dates, DateInfo{
			Date:            date,
			Status:          verdict,
			RegisteredCount: count,
			AvailableSpots:  spots,
		})

		next, err := date.AddDays(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		date = next
	}

	uc.logger.Info("GetAvailableDates: resolved %d dates in %s..%s", len(dates), from, to)

	return &Response{
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
		CapacityPerDate: uc.rules.CapacityPerDate,
		CourseStart:     uc.courseStart,
		CourseEnd:       uc.courseEnd,
		Dates:           dates,
	}, nil
}
