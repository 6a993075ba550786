package get_grouped_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	groups []domain.GroupedReservation
	err    error
}

func (f *fakeService) ListGrouped(context.Context, string) ([]domain.GroupedReservation, error) {
	return f.groups, f.err
}

func TestHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{groups: []domain.GroupedReservation{{
			DeskID:         "d-1",
			DeskName:       "Desk #d-1",
			ReservationIDs: []string{"r-1", "r-2"},
			Date:           time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		}}}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/grouped", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
		rec := httptest.NewRecorder()

		NewHandler(svc, nopLogger{}).Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2024-05-06"`)
		assert.Contains(t, rec.Body.String(), `"reservationIds":["r-1","r-2"]`)
	})

	t.Run("service error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/grouped", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
		rec := httptest.NewRecorder()

		NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}).Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
