package cleanup

import (
	"context"
	"time"
)

// DefaultInterval период очистки, если в конфигурации указано неположительное значение
const DefaultInterval = time.Hour

// Worker периодически удаляет бронирования, закончившиеся раньше now - retention
type Worker struct {
	repo         ReservationRepository
	metrics      Metrics
	interval     time.Duration
	retention    time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewWorker создает воркер очистки
func NewWorker(
	repo ReservationRepository,
	metrics Metrics,
	interval time.Duration,
	retention time.Duration,
	logger Logger,
) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if retention < 0 {
		retention = 0
	}

	return &Worker{
		repo:         repo,
		metrics:      metrics,
		interval:     interval,
		retention:    retention,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run выполняет очистку сразу и затем на каждом тике, пока не отменён ctx
// Блокирующий вызов, запускать в отдельной горутине
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	w.logger.Info("Cleanup: started, interval=%s, retention=%s", w.interval, w.retention)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Cleanup: stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce выполняет одну итерацию очистки и возвращает число удалённых броней
func (w *Worker) RunOnce(ctx context.Context) int64 {
	cutoff := w.timeProvider.Now().Add(-w.retention)

	deleted, err := w.repo.DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		w.logger.Error("Cleanup: failed to delete reservations ended before %s: %v", cutoff.Format(time.RFC3339), err)
		return 0
	}

	if deleted > 0 {
		w.metrics.ObserveCleaned(int(deleted))
		w.logger.Info("Cleanup: deleted %d reservations ended before %s", deleted, cutoff.Format(time.RFC3339))
	}

	return deleted
}
