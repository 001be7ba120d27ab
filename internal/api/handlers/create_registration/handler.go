package create_registration

import (
	"errors"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
	createRegistration "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/create_registration"
)

const (
	msgInvalidRequestBody = "neplatné telo požiadavky"
	msgInvalidInput       = "neplatné meno, e-mail alebo dátum"
	msgDateNotBookable    = "vybraný termín nie je dostupný na registráciu"
	msgVerificationFailed = "overenie reCAPTCHA zlyhalo, skúste to prosím znova"
	msgCapacityFull       = "kapacita kurzu na vybraný termín je už naplnená"
	msgDuplicate          = "tento e-mail je už na vybraný termín registrovaný"
	msgStoreTimeout       = "server je preťažený, skúste to prosím neskôr"
)

type Handler struct {
	useCase CreateRegistrationUseCase
	logger  Logger
}

func NewHandler(useCase CreateRegistrationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createRegistration.ErrInvalidInput):
			h.logger.Warn("POST /registrations - Invalid input: date=%s: %v", req.CourseDate, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createRegistration.ErrDateNotBookable):
			h.logger.Warn("POST /registrations - Date not bookable: date=%s", req.CourseDate)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createRegistration.ErrVerificationFailed):
			h.logger.Warn("POST /registrations - Verification failed: date=%s: %v", req.CourseDate, err)
			handlers.RespondError(w, http.StatusForbidden, msgVerificationFailed)

		case errors.Is(err, createRegistration.ErrCapacityFull):
			h.logger.Warn("POST /registrations - Capacity full: date=%s", req.CourseDate)
			handlers.RespondError(w, http.StatusConflict, msgCapacityFull)

		case errors.Is(err, createRegistration.ErrDuplicate):
			h.logger.Warn("POST /registrations - Duplicate registration: date=%s", req.CourseDate)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		case errors.Is(err, createRegistration.ErrStoreTimeout):
			h.logger.Error("POST /registrations - Store timeout: date=%s: %v", req.CourseDate, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreTimeout)

		default:
			h.logger.Error("POST /registrations - Failed to create registration: date=%s, error=%v",
				req.CourseDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registrations - Registration created: id=%d, date=%s", result.ID, result.CourseDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
