package deskclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

type fakeSource struct {
	desks []domain.Desk
	err   error
	calls int
}

func (f *fakeSource) ListDesks(context.Context) ([]domain.Desk, error) {
	f.calls++
	return f.desks, f.err
}

func TestDeskStore_ReplaceDoesNotMutateSnapshot(t *testing.T) {
	store := NewDeskStore(&fakeSource{})
	assert.Empty(t, store.Snapshot())

	input := []domain.Desk{{ID: "d-1", Name: "A1"}}
	store.Replace(input)
	first := store.Snapshot()

	input[0].Name = "changed by caller"
	store.Replace([]domain.Desk{{ID: "d-2", Name: "B1"}})

	assert.Equal(t, "A1", first[0].Name)
	assert.Equal(t, "B1", store.Snapshot()[0].Name)
}

func TestDeskStore_Refresh(t *testing.T) {
	source := &fakeSource{desks: []domain.Desk{{ID: "d-1"}}}
	store := NewDeskStore(source)

	require.NoError(t, store.Refresh(context.Background()))
	assert.Len(t, store.Snapshot(), 1)

	source.err = errors.New("offline")
	assert.Error(t, store.Refresh(context.Background()))
	assert.Len(t, store.Snapshot(), 1, "failed refresh keeps previous snapshot")
}

func TestDeskStore_Subscribe(t *testing.T) {
	store := NewDeskStore(&fakeSource{})
	updates, unsubscribe := store.Subscribe()

	store.Replace([]domain.Desk{{ID: "d-1"}})
	got := <-updates
	assert.Equal(t, "d-1", got[0].ID)

	// медленный подписчик получает только последний снимок
	store.Replace([]domain.Desk{{ID: "d-2"}})
	store.Replace([]domain.Desk{{ID: "d-3"}})
	got = <-updates
	assert.Equal(t, "d-3", got[0].ID)

	unsubscribe()
	unsubscribe()
	_, open := <-updates
	assert.False(t, open)

	store.Replace([]domain.Desk{{ID: "d-4"}})
}
