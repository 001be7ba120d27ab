package get_statistics

import (
	"context"
	"fmt"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/ptr"
)

// UseCase aggregates the admin dashboard numbers: per-date occupancy,
// participant origin breakdown and theoretical revenue.
type UseCase struct {
	registrationRepo RegistrationRepository
	rules            domain.CalendarRules
	coursePriceCZK   int
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(registrationRepo RegistrationRepository, rules domain.CalendarRules, coursePriceCZK int, logger Logger) *UseCase {
	return &UseCase{
		registrationRepo: registrationRepo,
		rules:            rules,
		coursePriceCZK:   coursePriceCZK,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute reports on the requested range, defaulting to the booking
// window. Unlike the public availability path the range is not clamped,
// so past course dates stay reportable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStatistics: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	windowStart := uc.rules.WindowStart(now)
	windowEnd := uc.rules.WindowEnd(now)

	from, to := req.From, req.To
	if from.IsZero() {
		from = windowStart
	}
	if to.IsZero() {
		to = windowEnd
	}

	rows, err := uc.registrationRepo.ListWithFilter(ctx, domain.RegistrationFilter{
		From: ptr.Ptr(from),
		To:   ptr.Ptr(to),
	})
	if err != nil {
		uc.logger.Error("GetStatistics: failed to list registrations for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: failed to list registrations: %v", ErrInternal, err)
	}

	counts := make(map[string]int)
	origins := map[string]int{
		domain.OriginSlovakia: 0,
		domain.OriginCzechia:  0,
		domain.OriginOther:    0,
	}
	for _, reg := range rows {
		counts[reg.CourseDate.String()]++
		origins[domain.EmailOrigin(reg.ParticipantEmail)]++
	}

	// One row per course day in the range; days with no course are
	// skipped, days with no registrations are reported at zero.
	dates := make([]DateStats, 0, 32)
	for date := from; !date.After(to); {
		if uc.rules.IsOperatingWeekday(date) && !uc.rules.IsHoliday(date) {
			count := counts[date.String()]
			spots := uc.rules.CapacityPerDate - count
			if spots < 0 {
				spots = 0
			}
			dates = append(dates, DateStats{
				Date:            date,
				RegisteredCount: count,
				AvailableSpots:  spots,
			})
		}

		next, err := date.AddDays(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		date = next
	}

	uc.logger.Info("GetStatistics: %d registrations over %s..%s", len(rows), from, to)

	return &Response{
		WindowStart:        windowStart,
		WindowEnd:          windowEnd,
		CapacityPerDate:    uc.rules.CapacityPerDate,
		TotalRegistrations: len(rows),
		CoursePriceCZK:     uc.coursePriceCZK,
		TotalRevenueCZK:    len(rows) * uc.coursePriceCZK,
		Dates:              dates,
		Origins:            origins,
	}, nil
}

func validateRequest(req *Request) error {
	if !req.From.IsZero() {
		if err := req.From.Validate(); err != nil {
			return fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
	}
	if !req.To.IsZero() {
		if err := req.To.Validate(); err != nil {
			return fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
	}
	if !req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From) {
		return fmt.Errorf("%w: to precedes from", ErrInvalidInput)
	}
	return nil
}
