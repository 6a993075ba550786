package deskclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// maxParallelCancels ограничение одновременных запросов отмены
const maxParallelCancels = 8

// Coordinator бронирует выбранные слоты параллельными запросами
type Coordinator struct {
	booker Booker
	store  Refresher
	log    Logger
}

// NewCoordinator создает координатор. store может быть nil, тогда обновление пропускается
func NewCoordinator(booker Booker, store Refresher, log Logger) *Coordinator {
	return &Coordinator{
		booker: booker,
		store:  store,
		log:    log,
	}
}

// Book схлопывает выбранные слоты в непрерывные интервалы и бронирует каждый отдельным запросом
//
// Все запросы доводятся до конца, ошибка одного не отменяет остальные.
// Если хоть один интервал не забронирован, успешные отменяются и возвращается *BatchError.
// Снимок столов обновляется один раз и только при полном успехе.
// Пустой выбор ничего не отправляет и возвращает nil, nil
func (c *Coordinator) Book(ctx context.Context, mode domain.SlotMode, deskID string, selected []domain.TimeSlot) ([]domain.Reservation, error) {
	if len(selected) == 0 {
		return nil, nil
	}

	runs := availability.GroupRuns(mode, deskID, selected)
	outcomes := make([]RunOutcome, len(runs))

	var g errgroup.Group
	for i, run := range runs {
		g.Go(func() error {
			created, err := c.booker.CreateReservation(ctx, run)
			outcomes[i] = RunOutcome{Request: run, Reservations: created, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	var created []domain.Reservation
	for _, o := range outcomes {
		if o.Err != nil {
			failed = true
			continue
		}
		created = append(created, o.Reservations...)
	}

	if failed {
		batchErr := &BatchError{Runs: outcomes}
		c.log.Warn("Book: desk=%s: %v", deskID, batchErr)

		// откат выполняется даже если ctx уже отменён
		batchErr.CompensationErr = c.cancelAll(context.WithoutCancel(ctx), reservationIDs(created))
		if batchErr.CompensationErr != nil {
			c.log.Error("Book: desk=%s: compensation failed: %v", deskID, batchErr.CompensationErr)
		}
		return nil, batchErr
	}

	c.log.Info("Book: desk=%s: %d slots → %d runs → %d reservations", deskID, len(selected), len(runs), len(created))
	c.refresh(ctx)
	return created, nil
}

// CancelGroup отменяет сгруппированное бронирование: по запросу на каждый ID
// Снимок обновляется только если отменены все
func (c *Coordinator) CancelGroup(ctx context.Context, group domain.GroupedReservation) error {
	if len(group.ReservationIDs) == 0 {
		return nil
	}

	if err := c.cancelAll(ctx, group.ReservationIDs); err != nil {
		c.log.Warn("CancelGroup: desk=%s, date=%s: %v", group.DeskID, group.Date.Format("2006-01-02"), err)
		return err
	}

	c.log.Info("CancelGroup: desk=%s: %d reservations cancelled", group.DeskID, len(group.ReservationIDs))
	c.refresh(ctx)
	return nil
}

func (c *Coordinator) cancelAll(ctx context.Context, ids []string) error {
	var (
		mu   sync.Mutex
		errs []error
	)

	var g errgroup.Group
	g.SetLimit(maxParallelCancels)
	for _, id := range ids {
		g.Go(func() error {
			if err := c.booker.CancelReservation(ctx, id); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("cancel %s: %w", id, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (c *Coordinator) refresh(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := c.store.Refresh(ctx); err != nil {
		c.log.Warn("refresh after booking failed: %v", err)
	}
}

func reservationIDs(reservations []domain.Reservation) []string {
	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.ID)
	}
	return ids
}
