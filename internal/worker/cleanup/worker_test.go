package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type countingMetrics struct {
	mu      sync.Mutex
	cleaned int
}

func (m *countingMetrics) ObserveCleaned(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleaned += count
}

type fakeRepo struct {
	mu      sync.Mutex
	calls   int
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakeRepo) DeleteEndedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	f.calls++
	f.cutoffs = append(f.cutoffs, cutoff)
	f.mu.Unlock()

	return f.deleted, f.err
}

func (f *fakeRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestWorker_RunOnce(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	t.Run("deletes with retention cutoff", func(t *testing.T) {
		repo := &fakeRepo{deleted: 3}
		m := &countingMetrics{}
		w := NewWorker(repo, m, time.Hour, 24*time.Hour, nopLogger{})
		w.timeProvider = fixedClock{now: now}

		assert.EqualValues(t, 3, w.RunOnce(context.Background()))
		assert.Equal(t, []time.Time{now.Add(-24 * time.Hour)}, repo.cutoffs)
		assert.Equal(t, 3, m.cleaned)
	})

	t.Run("repository error is swallowed", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("db down")}
		w := NewWorker(repo, &countingMetrics{}, time.Hour, 0, nopLogger{})

		assert.Zero(t, w.RunOnce(context.Background()))
	})
}

func TestNewWorker_DefaultInterval(t *testing.T) {
	w := NewWorker(&fakeRepo{}, &countingMetrics{}, 0, -time.Hour, nopLogger{})

	assert.Equal(t, DefaultInterval, w.interval)
	assert.Zero(t, w.retention)
}

func TestWorker_Run(t *testing.T) {
	repo := &fakeRepo{}
	w := NewWorker(repo, &countingMetrics{}, 10*time.Millisecond, 0, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// первая очистка выполняется сразу, затем по тикам
	require.Eventually(t, func() bool { return repo.callCount() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
