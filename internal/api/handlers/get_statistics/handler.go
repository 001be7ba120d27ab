package get_statistics

import (
	"errors"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
	getStatistics "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/get_statistics"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

const msgInvalidRange = "neplatný rozsah dátumov, očakáva sa YYYY-MM-DD"

type Handler struct {
	useCase GetStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/statistics?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getStatistics.Request{
		From: types.DateString(query.Get("from")),
		To:   types.DateString(query.Get("to")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStatistics.ErrInvalidInput):
			h.logger.Warn("GET /admin/statistics - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/statistics - Failed to aggregate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/statistics - %d registrations over %s..%s",
		result.TotalRegistrations, result.WindowStart, result.WindowEnd)
	handlers.RespondJSON(w, http.StatusOK, result)
}
