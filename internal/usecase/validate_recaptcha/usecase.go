package validate_recaptcha

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/mariankubacka/latte-art-bookings-praha/internal/infra/storage/settings"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/verification"
)

// UseCase checks a reCAPTCHA token against the siteverify endpoint
// using the stored secret key.
type UseCase struct {
	settingsRepo SettingsRepository
	client       VerifyClient
	minScore     float64
	logger       Logger
}

func NewUseCase(settingsRepo SettingsRepository, client VerifyClient, minScore float64, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		client:       client,
		minScore:     minScore,
		logger:       logger,
	}
}

// Execute verifies one token. A rejected token is a successful Execute
// with Response.Success=false; errors are reserved for missing
// configuration and infrastructure failures.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Token == "" {
		uc.logger.Warn("ValidateRecaptcha: empty token")
		return nil, ErrInvalidInput
	}

	if req.UserInfo.Email != "" {
		uc.logger.Info("ValidateRecaptcha: validation requested for %s", req.UserInfo.Email)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("ValidateRecaptcha: no settings stored")
			return nil, ErrNotConfigured
		}
		uc.logger.Error("ValidateRecaptcha: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	if !settings.CanValidate() {
		uc.logger.Warn("ValidateRecaptcha: secret key is not set")
		return nil, ErrNotConfigured
	}

	result, err := uc.client.Verify(ctx, settings.SecretKey, req.Token)
	if err != nil {
		uc.logger.Error("ValidateRecaptcha: siteverify request failed: %v", err)
		return nil, fmt.Errorf("%w: siteverify request failed: %v", ErrInternal, err)
	}

	if !result.Success {
		uc.logger.Warn("ValidateRecaptcha: token rejected, error-codes=%v", result.ErrorCodes)
		return &Response{
			Success: false,
			Score:   result.Score,
			Error:   ErrMsgServerRejected,
			Details: result.ErrorCodes,
		}, nil
	}

	if result.Score != nil && *result.Score < uc.minScore {
		uc.logger.Warn("ValidateRecaptcha: score %.2f below threshold %.2f", *result.Score, uc.minScore)
		return &Response{Success: false, Score: result.Score, Error: ErrMsgLowScore}, nil
	}

	uc.logger.Info("ValidateRecaptcha: token accepted, score=%.2f", result.EffectiveScore())
	return &Response{Success: true, Score: result.Score}, nil
}

// Validate adapts the usecase to the verification gate. Infrastructure
// failures surface as errors so the gate can decide how to fail.
func (uc *UseCase) Validate(ctx context.Context, token string) (verification.Outcome, error) {
	resp, err := uc.Execute(ctx, &Request{Token: token})
	if err != nil {
		return verification.Outcome{}, err
	}

	outcome := verification.Outcome{Passed: resp.Success}
	if resp.Score != nil {
		outcome.Score = *resp.Score
	}
	if !resp.Success {
		switch resp.Error {
		case ErrMsgLowScore:
			outcome.Reason = verification.ReasonLowScore
		default:
			outcome.Reason = verification.ReasonServerRejected
		}
	}
	return outcome, nil
}
