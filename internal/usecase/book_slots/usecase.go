package book_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	createReservation "github.com/m04kA/SMC-DeskService/internal/usecase/create_reservation"
)

// UseCase use case для бронирования набора слотов сетки
type UseCase struct {
	reserver Reserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reserver Reserver, logger Logger) *UseCase {
	return &UseCase{
		reserver: reserver,
		logger:   logger,
	}
}

// Execute схлопывает выбранные слоты в непрерывные прогоны и бронирует их все в одной транзакции
//
// hourly: [8-9, 9-10, 13-14] → две брони [8-10] и [13-14]
// daily: дни 3, 4, 5 и 9 → прогоны [05:00 3, 18:00 5] и [05:00 9, 18:00 9], по брони на каждый день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlots: user=%s, desk=%s, mode=%s, slots=%d", req.UserID, req.DeskID, req.Mode, len(req.Slots))

	// 1. Валидация входных данных
	selected, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("BookSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Схлопываем в прогоны
	runs := availability.GroupRuns(req.Mode, req.DeskID, selected)

	// 3. Раскладываем многодневные прогоны по дням
	intervals := make([]domain.TimeSlot, 0, len(selected))
	for _, run := range runs {
		perDay, err := availability.SplitByDays(run.DateFrom, run.DateTo)
		if err != nil {
			uc.logger.Error("BookSlots: cannot split run %s - %s: %v", run.DateFrom, run.DateTo, err)
			return nil, fmt.Errorf("%w: split run: %v", ErrInternal, err)
		}
		intervals = append(intervals, perDay...)
	}

	// 4. Бронируем всё или ничего
	created, err := uc.reserver.ReserveSlots(ctx, req.UserID, req.DeskID, intervals, createReservation.SourceBatch)
	if err != nil {
		return nil, mapReserveError(err)
	}

	uc.logger.Info("BookSlots: %d slots → %d runs → %d reservations", len(selected), len(runs), len(created))

	return &Response{
		Requests:     runs,
		Reservations: created,
	}, nil
}

func mapReserveError(err error) error {
	switch {
	case errors.Is(err, createReservation.ErrDeskNotFound):
		return ErrDeskNotFound
	case errors.Is(err, createReservation.ErrDeskAlreadyReserved):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, createReservation.ErrUserAlreadyReserved):
		return fmt.Errorf("%w: %v", ErrUserAlreadyReserved, err)
	case errors.Is(err, createReservation.ErrReservationInPast):
		return fmt.Errorf("%w: %v", ErrSlotInPast, err)
	case errors.Is(err, createReservation.ErrInvalidInput),
		errors.Is(err, createReservation.ErrOutsideWorkingHours),
		errors.Is(err, createReservation.ErrInvalidTimeRange):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
