package get_desk_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	getDeskSlots "github.com/m04kA/SMC-DeskService/internal/usecase/get_desk_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	req *getDeskSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDeskSlots.Request) (*getDeskSlots.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	from := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	return &getDeskSlots.Response{
		DeskID:   req.DeskID,
		DeskName: "A1",
		Mode:     req.Mode,
		Slots:    []domain.Slot{{From: from, To: from.Add(time.Hour), IsAvailable: true}},
	}, nil
}

const deskID = "0b7e5f9a-4c1d-4f3e-9b2a-6d8c7e1f2a3b"

func serve(uc *fakeUseCase, id, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/desks/"+id+"/slots?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"deskId": id})
	req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("default mode is hourly", func(t *testing.T) {
		uc := &fakeUseCase{}

		rec := serve(uc, deskID, "date=2024-05-06")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, uc.req)
		assert.Equal(t, domain.SlotModeHourly, uc.req.Mode)
		assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), uc.req.Date)
		assert.Contains(t, rec.Body.String(), `"isAvailable":true`)
	})

	t.Run("daily mode", func(t *testing.T) {
		uc := &fakeUseCase{}

		rec := serve(uc, deskID, "date=2024-05-06&mode=daily")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.SlotModeDaily, uc.req.Mode)
	})

	t.Run("bad requests", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "x", "date=2024-05-06").Code)
		assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, deskID, "").Code)
		assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, deskID, "date=06.05.2024").Code)
		assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, deskID, "date=2024-05-06&mode=weekly").Code)
	})

	t.Run("desk not found", func(t *testing.T) {
		rec := serve(&fakeUseCase{err: getDeskSlots.ErrDeskNotFound}, deskID, "date=2024-05-06")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
