package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	userID, id string
	err        error
}

func (f *fakeService) Cancel(_ context.Context, userID, id string) error {
	f.userID, f.id = userID, id
	return f.err
}

const reservationID = "7a1e4a4e-1f7b-4a4a-8d4f-2b8f7a6f1c11"

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "cancelled", id: reservationID, wantStatus: http.StatusNoContent},
		{name: "invalid id", id: "r-1", wantStatus: http.StatusBadRequest},
		{name: "not found", id: reservationID, err: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", id: reservationID, err: reservations.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"reservationId": tt.id})
			req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "u-1", svc.userID)
				assert.Equal(t, reservationID, svc.id)
			}
		})
	}
}
