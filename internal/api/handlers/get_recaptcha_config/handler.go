package get_recaptcha_config

import (
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
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

// Handle GET /api/v1/recaptcha/site-key
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSiteKey(r.Context())
	if err != nil {
		h.logger.Error("GET /recaptcha/site-key - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
