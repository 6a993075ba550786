package get_desk_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/desk"
)

// UseCase use case для получения сетки слотов стола
type UseCase struct {
	deskRepo        DeskRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	deskRepo DeskRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		deskRepo:        deskRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDeskSlots: user=%s, desk=%s, date=%s, mode=%s",
		req.UserID, req.DeskID, req.Date.Format("2006-01-02"), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDeskSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование стола
	desk, err := uc.deskRepo.GetByID(ctx, req.DeskID)
	if err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			uc.logger.Warn("GetDeskSlots: desk id=%s not found", req.DeskID)
			return nil, ErrDeskNotFound
		}
		uc.logger.Error("GetDeskSlots: failed to get desk id=%s: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования, попадающие в окно сетки
	from, to := gridWindow(req.Mode, req.Date)
	reservations, err := uc.reservationRepo.ListByDeskBetween(ctx, req.DeskID, from, to)
	if err != nil {
		uc.logger.Error("GetDeskSlots: failed to get reservations for desk id=%s: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	reserved := make([]domain.TimeSlot, 0, len(reservations))
	for _, r := range reservations {
		reserved = append(reserved, r.ReservedSlots...)
	}

	// 4. Генерируем сетку
	slots := availability.GenerateSlots(req.Mode, req.Date, reserved)

	uc.logger.Info("GetDeskSlots: desk=%s, %d slots, %d reservations in window", req.DeskID, len(slots), len(reserved))

	return &Response{
		DeskID:   desk.ID,
		DeskName: desk.Name,
		Mode:     req.Mode,
		Slots:    slots,
	}, nil
}
