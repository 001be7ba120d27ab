package get_participants

import (
	"errors"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
	registrationsService "github.com/mariankubacka/latte-art-bookings-praha/internal/service/registrations"
	"github.com/mariankubacka/latte-art-bookings-praha/internal/service/registrations/models"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

const msgInvalidFilter = "neplatný filter, dátumy musia mať formát YYYY-MM-DD"

type Handler struct {
	service RegistrationsService
	logger  Logger
}

func NewHandler(service RegistrationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/registrations?from=&to=&email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}

	query := r.URL.Query()
	if v := query.Get("from"); v != "" {
		from := types.DateString(v)
		req.From = &from
	}
	if v := query.Get("to"); v != "" {
		to := types.DateString(v)
		req.To = &to
	}
	if v := query.Get("email"); v != "" {
		req.Email = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, registrationsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/registrations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/registrations - Failed to list registrations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/registrations - Returned %d registrations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
