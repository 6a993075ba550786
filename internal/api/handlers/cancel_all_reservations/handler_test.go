package cancel_all_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	count int64
	err   error
}

func (f *fakeService) CancelAll(context.Context, string) (int64, error) {
	return f.count, f.err
}

func TestHandler_Handle(t *testing.T) {
	serve := func(svc *fakeService) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Handle(rec, req)
		return rec
	}

	rec := serve(&fakeService{count: 3})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cancelled":3}`, rec.Body.String())

	rec = serve(&fakeService{err: reservations.ErrReservationNotFound})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&fakeService{err: reservations.ErrInternal})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
