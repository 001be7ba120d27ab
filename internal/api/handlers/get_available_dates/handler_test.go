package get_available_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableDates "github.com/mariankubacka/latte-art-bookings-praha/internal/usecase/get_available_dates"
	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableDates.Response
	err  error
	req  *getAvailableDates.Request
}

func (uc *fakeUseCase) Execute(_ context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	uc.req = req
	return uc.resp, uc.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_PassesQueryRange(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableDates.Response{
		WindowStart:     "2025-03-10",
		WindowEnd:       "2025-05-09",
		CapacityPerDate: 5,
		Dates: []getAvailableDates.DateInfo{
			{Date: "2025-03-12", Status: "available", RegisteredCount: 2, AvailableSpots: 3},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-dates?from=2025-03-10&to=2025-03-16", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, types.DateString("2025-03-10"), uc.req.From)
	assert.Equal(t, types.DateString("2025-03-16"), uc.req.To)

	var resp getAvailableDates.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, 3, resp.Dates[0].AvailableSpots)
}

func TestHandle_ErrorMapping(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: getAvailableDates.ErrInvalidInput}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-dates?from=bad", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("counts unavailable", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: getAvailableDates.ErrCountsUnavailable}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-dates", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
