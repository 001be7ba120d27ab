package create_registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/domain"
	registrationRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/registration"
	settingsRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/settings"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/verification"
)

// UseCase commits one course registration. The capacity check and the
// insert run in a serializable transaction, so two concurrent submits
// for the last spot cannot both pass; the unique constraint on
// (course_date, participant_email) backs up the duplicate check the
// same way.
type UseCase struct {
	registrationRepo RegistrationRepository
	settingsRepo     SettingsRepository
	validator        TokenValidator
	ledger           CapacityLedger
	txManager        TransactionManager
	rules            domain.CalendarRules
	challengeTimeout time.Duration
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(
	registrationRepo RegistrationRepository,
	settingsRepo SettingsRepository,
	validator TokenValidator,
	ledger CapacityLedger,
	txManager TransactionManager,
	rules domain.CalendarRules,
	challengeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		registrationRepo: registrationRepo,
		settingsRepo:     settingsRepo,
		validator:        validator,
		ledger:           ledger,
		txManager:        txManager,
		rules:            rules,
		challengeTimeout: challengeTimeout,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the registration checks in order: input, date rules,
// verification, then capacity and duplicate against live rows. Cheap
// local checks run before the remote verification call.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Input validation and normalization.
	name, email, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateRegistration: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateRegistration: date=%s, email=%s", req.CourseDate, email)

	// 2. Date rules: operating weekday, holiday, booking window.
	now := uc.timeProvider.Now()
	if !uc.rules.IsBookable(req.CourseDate, now) {
		uc.logger.Warn("CreateRegistration: date %s is not bookable", req.CourseDate)
		return nil, ErrDateNotBookable
	}

	// 3. Verification gate.
	if err := uc.verify(ctx, req.RecaptchaToken); err != nil {
		return nil, err
	}

	var result *domain.Registration

	// 4. Capacity and duplicate against live rows, then the insert,
	// all under one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := uc.registrationRepo.CountByDate(txCtx, req.CourseDate)
		if err != nil {
			uc.logger.Error("CreateRegistration: failed to count registrations for %s: %v", req.CourseDate, err)
			return uc.storeErr("failed to count registrations", err)
		}

		// The same verdict function the availability listing uses, here
		// with the transaction's live count.
		switch domain.ResolveAvailability(req.CourseDate, uc.rules, count, now) {
		case domain.VerdictFull:
			uc.logger.Warn("CreateRegistration: date %s is full, %d/%d taken",
				req.CourseDate, count, uc.rules.CapacityPerDate)
			return ErrCapacityFull
		case domain.VerdictDisallowed:
			uc.logger.Warn("CreateRegistration: date %s is not bookable", req.CourseDate)
			return ErrDateNotBookable
		}

		exists, err := uc.registrationRepo.ExistsByDateAndEmail(txCtx, req.CourseDate, email)
		if err != nil {
			uc.logger.Error("CreateRegistration: failed to check duplicate for %s: %v", req.CourseDate, err)
			return uc.storeErr("failed to check duplicate", err)
		}
		if exists {
			uc.logger.Warn("CreateRegistration: %s already registered for %s", email, req.CourseDate)
			return ErrDuplicate
		}

		created, err := uc.registrationRepo.Create(txCtx, &domain.Registration{
			CourseDate:       req.CourseDate,
			ParticipantName:  name,
			ParticipantEmail: email,
		})
		if err != nil {
			if errors.Is(err, registrationRepo.ErrDuplicateRegistration) {
				return ErrDuplicate
			}
			uc.logger.Error("CreateRegistration: failed to create registration: %v", err)
			return uc.storeErr("failed to create registration", err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The cached count for this date is now behind the store.
	uc.ledger.Invalidate(req.CourseDate)

	uc.logger.Info("CreateRegistration: committed id=%d for %s", result.ID, result.CourseDate)

	return &Response{
		ID:               result.ID,
		CourseDate:       result.CourseDate,
		ParticipantName:  result.ParticipantName,
		ParticipantEmail: result.ParticipantEmail,
		CreatedAt:        result.CreatedAt,
	}, nil
}

// storeErr maps a repository failure to the matching sentinel, keeping a
// timed-out store call distinguishable from other failures.
func (uc *UseCase) storeErr(op string, err error) error {
	if errors.Is(err, registrationRepo.ErrQueryTimeout) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

// verify runs the attempt through a fresh verification gate. A stored
// secret key enables the gate; without one registration proceeds
// unverified.
func (uc *UseCase) verify(ctx context.Context, token string) error {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("CreateRegistration: verification disabled, no settings stored")
			return nil
		}
		uc.logger.Error("CreateRegistration: failed to load verification settings: %v", err)
		if errors.Is(err, settingsRepo.ErrQueryTimeout) {
			return fmt.Errorf("%w: failed to load verification settings: %v", ErrStoreTimeout, err)
		}
		return fmt.Errorf("%w: failed to load verification settings: %v", ErrInternal, err)
	}

	enabled := settings.CanValidate()
	if !enabled {
		uc.logger.Info("CreateRegistration: verification disabled, no secret key")
		return nil
	}

	if token == "" {
		uc.logger.Warn("CreateRegistration: verification enabled but no token supplied")
		return fmt.Errorf("%w: token is required", ErrVerificationFailed)
	}

	gate := verification.NewGate(uc.validator, uc.challengeTimeout, true, uc.logger)
	result, err := gate.Run(ctx, token)
	if err != nil {
		uc.logger.Error("CreateRegistration: verification gate failed: %v", err)
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	if !result.Passed {
		uc.logger.Warn("CreateRegistration: verification failed, reason=%s", result.Reason)
		return fmt.Errorf("%w: %s", ErrVerificationFailed, result.Reason)
	}

	return nil
}
