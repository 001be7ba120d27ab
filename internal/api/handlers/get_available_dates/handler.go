package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
	getAvailableDates "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/get_available_dates"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

const (
	msgInvalidRange      = "neplatný rozsah dátumov, očakáva sa YYYY-MM-DD"
	msgCountsUnavailable = "dostupnosť termínov sa momentálne nedá načítať"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getAvailableDates.Request{
		From: types.DateString(query.Get("from")),
		To:   types.DateString(query.Get("to")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /available-dates - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableDates.ErrCountsUnavailable):
			h.logger.Error("GET /available-dates - Counts unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCountsUnavailable)

		default:
			h.logger.Error("GET /available-dates - Failed to resolve availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-dates - Resolved %d dates", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
