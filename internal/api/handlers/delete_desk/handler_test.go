package delete_desk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/desks"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) Delete(context.Context, string) error {
	return f.err
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		deskID     string
		err        error
		wantStatus int
	}{
		{name: "deleted", deskID: "0b7e5f9a-4c1d-4f3e-9b2a-6d8c7e1f2a3b", wantStatus: http.StatusNoContent},
		{name: "invalid id", deskID: "abc", wantStatus: http.StatusBadRequest},
		{name: "not found", deskID: "0b7e5f9a-4c1d-4f3e-9b2a-6d8c7e1f2a3b", err: desks.ErrDeskNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/desks/"+tt.deskID, nil)
			req = mux.SetURLVars(req, map[string]string{"deskId": tt.deskID})
			req = req.WithContext(middleware.WithUserID(req.Context(), "admin"))
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
