package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/desk"
	reservationRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeskService/pkg/txmanager"
)

// UseCase use case для бронирования стола
type UseCase struct {
	deskRepo        DeskRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	deskRepo DeskRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		deskRepo:        deskRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute бронирует интервал {deskId, dateFrom, dateTo}
// Интервал на несколько дней раскладывается на брони по дням с тем же временем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, desk=%s, from=%s, to=%s",
		req.UserID, req.DeskID, req.DateFrom.Format("15:04 02.01.2006"), req.DateTo.Format("15:04 02.01.2006"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Раскладываем по дням
	slots, err := availability.SplitByDays(req.DateFrom, req.DateTo)
	if err != nil {
		uc.logger.Warn("CreateReservation: cannot split interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	// 3. Создаем брони
	created, err := uc.ReserveSlots(ctx, req.UserID, req.DeskID, slots, SourceSingle)
	if err != nil {
		return nil, err
	}

	return &Response{Reservations: created}, nil
}

// ReserveSlots атомарно бронирует набор интервалов одного стола
// Использует сериализуемую транзакцию и блокировку пересекающихся броней:
// либо создаются все интервалы, либо ни одного
func (uc *UseCase) ReserveSlots(ctx context.Context, userID, deskID string, slots []domain.TimeSlot, source string) ([]domain.Reservation, error) {
	now := uc.timeProvider.Now()

	if err := validateSlots(slots, now); err != nil {
		uc.logger.Warn("ReserveSlots: validation failed: %v", err)
		return nil, err
	}

	// Пересечения внутри самого запроса проверяем до похода в БД
	if a, b, ok := internalOverlap(slots); ok {
		uc.logger.Warn("ReserveSlots: requested intervals overlap each other: %s-%s and %s-%s",
			a.From.Format(time.RFC3339), a.To.Format(time.RFC3339), b.From.Format(time.RFC3339), b.To.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: requested intervals overlap each other", ErrInvalidInput)
	}

	var created []domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем существование стола
		if _, err := uc.deskRepo.GetByID(txCtx, deskID); err != nil {
			if errors.Is(err, deskRepo.ErrDeskNotFound) {
				return ErrDeskNotFound
			}
			return fmt.Errorf("%w: failed to get desk: %w", ErrInternal, err)
		}

		created = make([]domain.Reservation, 0, len(slots))
		for _, slot := range slots {
			// 2. Получаем пересекающиеся брони стола и пользователя с блокировкой
			conflicts, err := uc.reservationRepo.GetConflictsForUpdate(txCtx, deskID, userID, slot)
			if err != nil {
				return fmt.Errorf("%w: failed to get conflicts: %w", ErrInternal, err)
			}

			if err := classifyConflicts(deskID, conflicts); err != nil {
				return err
			}

			// 3. Создаем бронь
			reservation, err := uc.reservationRepo.Create(txCtx, deskID, userID, slot)
			if err != nil {
				return mapRepositoryError(err)
			}
			created = append(created, *reservation)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, txmanager.ErrSerialization):
			// Параллельная бронь пересекающегося периода победила во всех попытках
			uc.metrics.ObserveConflict("serialization")
			uc.logger.Warn("ReserveSlots: desk=%s: concurrent reservation: %v", deskID, err)
			err = fmt.Errorf("%w: concurrent reservation, try again: %v", ErrDeskAlreadyReserved, err)
		case errors.Is(err, ErrDeskAlreadyReserved):
			uc.metrics.ObserveConflict("desk")
			uc.logger.Warn("ReserveSlots: desk=%s already reserved: %v", deskID, err)
		case errors.Is(err, ErrUserAlreadyReserved):
			uc.metrics.ObserveConflict("user")
			uc.logger.Warn("ReserveSlots: user=%s already has a reservation: %v", userID, err)
		case errors.Is(err, ErrDeskNotFound):
			uc.logger.Warn("ReserveSlots: desk id=%s not found", deskID)
		default:
			uc.logger.Error("ReserveSlots: failed to reserve desk=%s for user=%s: %v", deskID, userID, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	uc.metrics.ObserveCreated(source, len(created))
	uc.logger.Info("ReserveSlots: created %d reservations on desk=%s for user=%s", len(created), deskID, userID)

	return created, nil
}

// classifyConflicts превращает найденные пересечения в ошибку
// Бронь того же стола важнее брони пользователя на другом столе
func classifyConflicts(deskID string, conflicts []domain.Reservation) error {
	var userConflict *domain.Reservation

	for i := range conflicts {
		if conflicts[i].DeskID == deskID {
			return fmt.Errorf("%w: reservation id=%s", ErrDeskAlreadyReserved, conflicts[i].ID)
		}
		if userConflict == nil {
			userConflict = &conflicts[i]
		}
	}

	if userConflict != nil {
		return fmt.Errorf("%w: reservation id=%s on desk=%s", ErrUserAlreadyReserved, userConflict.ID, userConflict.DeskID)
	}

	return nil
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrDeskAlreadyReserved):
		return fmt.Errorf("%w: %v", ErrDeskAlreadyReserved, err)
	case errors.Is(err, reservationRepo.ErrUserAlreadyReserved):
		return fmt.Errorf("%w: %v", ErrUserAlreadyReserved, err)
	case errors.Is(err, reservationRepo.ErrDeskNotFound):
		return ErrDeskNotFound
	default:
		return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
	}
}

// internalOverlap ищет первую пару строго пересекающихся интервалов запроса
// Граничащие интервалы допустимы
func internalOverlap(slots []domain.TimeSlot) (domain.TimeSlot, domain.TimeSlot, bool) {
	for i := range slots {
		if other, ok := availability.FirstConflict(slots[i], slots[i+1:]); ok {
			return slots[i], other, true
		}
	}
	return domain.TimeSlot{}, domain.TimeSlot{}, false
}
