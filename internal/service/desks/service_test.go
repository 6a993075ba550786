package desks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/desk"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type passTx struct {
	calls    int
	readOnly int
}

func (p *passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func (p *passTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	p.readOnly++
	return fn(ctx)
}

type fakeDeskRepo struct {
	desks     []domain.Desk
	created   []string
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeDeskRepo) CreateMany(_ context.Context, names []string) ([]domain.Desk, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = names
	out := make([]domain.Desk, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Desk{ID: "id-" + n, Name: n})
	}
	return out, nil
}

func (f *fakeDeskRepo) List(context.Context) ([]domain.Desk, error) {
	return append([]domain.Desk(nil), f.desks...), nil
}

func (f *fakeDeskRepo) UpdateName(context.Context, string, string) error { return f.updateErr }
func (f *fakeDeskRepo) Delete(context.Context, string) error             { return f.deleteErr }

type fakeReservationRepo struct {
	reservations []domain.Reservation
	since        time.Time
}

func (f *fakeReservationRepo) ListEndingAfter(_ context.Context, since time.Time) ([]domain.Reservation, error) {
	f.since = since
	return f.reservations, nil
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.May, day, hour, 0, 0, 0, time.UTC)
}

func reservation(deskID, userID string, day, from, to int) domain.Reservation {
	return domain.Reservation{
		ID:            deskID + userID,
		DeskID:        deskID,
		UserID:        userID,
		ReservedSlots: []domain.TimeSlot{domain.MustTimeSlot(at(day, from), at(day, to))},
	}
}

func newTestService(desks *fakeDeskRepo, res *fakeReservationRepo, tx *passTx) *Service {
	s := NewService(desks, res, tx, time.UTC, nopLogger{})
	s.timeProvider = fixedClock{now: at(10, 12)}
	return s
}

func TestService_List(t *testing.T) {
	desks := &fakeDeskRepo{desks: []domain.Desk{
		{ID: "free", Name: "A"},
		{ID: "partial", Name: "B"},
		{ID: "full", Name: "C"},
		{ID: "mine", Name: "D"},
		{ID: "tomorrow", Name: "E"},
	}}
	res := &fakeReservationRepo{reservations: []domain.Reservation{
		reservation("partial", "u2", 10, 9, 11),
		reservation("full", "u2", 10, 8, 14),
		reservation("full", "u3", 10, 14, 21),
		reservation("mine", "u1", 10, 15, 16),
		reservation("tomorrow", "u1", 11, 8, 21),
	}}

	tx := &passTx{}
	got, err := newTestService(desks, res, tx).List(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, 1, tx.readOnly)
	assert.Equal(t, at(10, 0), res.since)

	statuses := map[string]domain.DeskStatus{}
	for _, d := range got {
		statuses[d.ID] = d.Status
	}
	assert.Equal(t, domain.DeskStatusAvailable, statuses["free"])
	assert.Equal(t, domain.DeskStatusPartiallyReserved, statuses["partial"])
	assert.Equal(t, domain.DeskStatusFullyReserved, statuses["full"])
	assert.Equal(t, domain.DeskStatusReservedByMe, statuses["mine"])
	assert.Equal(t, domain.DeskStatusAvailable, statuses["tomorrow"])

	assert.True(t, got[2].Reserved)
	assert.Len(t, got[2].ReservedSlots, 2)
	assert.True(t, got[3].ReservedByMe)
	assert.False(t, got[4].ReservedByMe)
	assert.Len(t, got[4].ReservedSlots, 1)
}

func TestService_Load(t *testing.T) {
	t.Run("trims names and creates in one transaction", func(t *testing.T) {
		desks := &fakeDeskRepo{}
		tx := &passTx{}

		created, err := newTestService(desks, &fakeReservationRepo{}, tx).Load(context.Background(), []string{" A1 ", "A2"})

		require.NoError(t, err)
		assert.Len(t, created, 2)
		assert.Equal(t, []string{"A1", "A2"}, desks.created)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("duplicate in request", func(t *testing.T) {
		_, err := newTestService(&fakeDeskRepo{}, &fakeReservationRepo{}, &passTx{}).
			Load(context.Background(), []string{"A1", "A1"})

		assert.ErrorIs(t, err, ErrDeskNameTaken)
	})

	t.Run("name already in database", func(t *testing.T) {
		desks := &fakeDeskRepo{createErr: deskRepo.ErrDuplicateName}

		_, err := newTestService(desks, &fakeReservationRepo{}, &passTx{}).Load(context.Background(), []string{"A1"})

		assert.ErrorIs(t, err, ErrDeskNameTaken)
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := newTestService(&fakeDeskRepo{}, &fakeReservationRepo{}, &passTx{}).Load(context.Background(), nil)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := newTestService(&fakeDeskRepo{}, &fakeReservationRepo{}, &passTx{}).
			Load(context.Background(), []string{"  "})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Rename(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		input   string
		wantErr error
	}{
		{name: "ok", input: "B1"},
		{name: "not found", input: "B1", repoErr: deskRepo.ErrDeskNotFound, wantErr: ErrDeskNotFound},
		{name: "taken", input: "B1", repoErr: deskRepo.ErrDuplicateName, wantErr: ErrDeskNameTaken},
		{name: "internal", input: "B1", repoErr: errors.New("db down"), wantErr: ErrInternal},
		{name: "empty", input: "", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(&fakeDeskRepo{updateErr: tt.repoErr}, &fakeReservationRepo{}, &passTx{})

			err := s.Rename(context.Background(), "id", tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	s := newTestService(&fakeDeskRepo{deleteErr: deskRepo.ErrDeskNotFound}, &fakeReservationRepo{}, &passTx{})
	assert.ErrorIs(t, s.Delete(context.Background(), "id"), ErrDeskNotFound)

	s = newTestService(&fakeDeskRepo{}, &fakeReservationRepo{}, &passTx{})
	assert.NoError(t, s.Delete(context.Background(), "id"))
}
