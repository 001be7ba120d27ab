package validate_recaptcha

import (
	"errors"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
	validateRecaptcha "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/validate_recaptcha"
)

const (
	msgInvalidRequestBody = "neplatné telo požiadavky"
	msgMissingToken       = "chýbajúci token"
	msgNotConfigured      = "overenie reCAPTCHA nie je nakonfigurované"
)

type Handler struct {
	useCase ValidateRecaptchaUseCase
	logger  Logger
}

func NewHandler(useCase ValidateRecaptchaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recaptcha/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req validateRecaptcha.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recaptcha/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, validateRecaptcha.ErrInvalidInput):
			h.logger.Warn("POST /recaptcha/validate - Missing token")
			handlers.RespondBadRequest(w, msgMissingToken)

		case errors.Is(err, validateRecaptcha.ErrNotConfigured):
			h.logger.Warn("POST /recaptcha/validate - Verification not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		default:
			h.logger.Error("POST /recaptcha/validate - Validation failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recaptcha/validate - success=%v, error=%q", result.Success, result.Error)
	handlers.RespondJSON(w, http.StatusOK, result)
}
