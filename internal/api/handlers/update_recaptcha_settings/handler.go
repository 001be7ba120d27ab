package update_recaptcha_settings

import (
	"errors"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
	settingsService "github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "neplatné telo požiadavky"
	msgInvalidSettings    = "kľúč siteKey je povinný"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/recaptcha-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/recaptcha-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/recaptcha-settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/recaptcha-settings - Failed to store settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/recaptcha-settings - Settings replaced")
	handlers.RespondJSON(w, http.StatusOK, result)
}
