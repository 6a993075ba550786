package desks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/desk"
)

// Service сервис для работы со столами
type Service struct {
	deskRepo        DeskRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса столов
// location - зона, в которой считается "сегодня" для статуса стола
func NewService(
	deskRepo DeskRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		deskRepo:        deskRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// List возвращает все столы с предстоящими бронированиями и статусом на сегодня
//
// Статус:
// - reserved-by-me, если у пользователя есть бронь на этот стол, задевающая сегодня
// - иначе available / partially-reserved / fully-reserved по покрытию рабочего дня 08:00-21:00
func (s *Service) List(ctx context.Context, userID string) ([]domain.Desk, error) {
	now := s.timeProvider.Now().In(s.location)
	today := domain.DayOf(now)

	var (
		desks        []domain.Desk
		reservations []domain.Reservation
	)

	// Оба запроса в одной read-only транзакции, чтобы столы и брони были согласованы
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		desks, err = s.deskRepo.List(txCtx)
		if err != nil {
			s.logger.Error("List: failed to get desks: %v", err)
			return fmt.Errorf("%w: List - desk repository error: %v", ErrInternal, err)
		}

		reservations, err = s.reservationRepo.ListEndingAfter(txCtx, today)
		if err != nil {
			s.logger.Error("List: failed to get reservations: %v", err)
			return fmt.Errorf("%w: List - reservation repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("List: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: List - transaction error: %v", ErrInternal, err)
	}

	byDesk := make(map[string][]domain.Reservation, len(desks))
	for _, r := range reservations {
		byDesk[r.DeskID] = append(byDesk[r.DeskID], r)
	}

	for i := range desks {
		fillStatus(&desks[i], byDesk[desks[i].ID], userID, today)
	}

	s.logger.Info("List: %d desks, %d upcoming reservations", len(desks), len(reservations))
	return desks, nil
}

func fillStatus(desk *domain.Desk, reservations []domain.Reservation, userID string, today time.Time) {
	slots := make([]domain.TimeSlot, 0, len(reservations))
	var mine []domain.TimeSlot

	for _, r := range reservations {
		slots = append(slots, r.ReservedSlots...)
		if r.UserID == userID {
			mine = append(mine, r.ReservedSlots...)
		}
	}

	// Интервалы в локальной зоне, чтобы клиенты видели те же часы, что и сетка слотов
	for i := range slots {
		slots[i] = domain.TimeSlot{From: slots[i].From.In(today.Location()), To: slots[i].To.In(today.Location())}
	}

	desk.ReservedSlots = slots
	desk.Status = availability.DayStatus(slots, today)
	desk.Reserved = desk.Status == domain.DeskStatusFullyReserved
	desk.ReservedByMe = len(availability.SlotsForDay(mine, today)) > 0

	if desk.ReservedByMe {
		desk.Status = domain.DeskStatusReservedByMe
	}
}

// Load массово создает столы в одной транзакции
// Дубликаты внутри запроса и имена, уже существующие в БД, отклоняются целиком
func (s *Service) Load(ctx context.Context, names []string) ([]domain.Desk, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no desks to load", ErrInvalidInput)
	}

	cleaned := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name, err := normalizeName(name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[name]; ok {
			s.logger.Warn("Load: duplicate desk name %q in request", name)
			return nil, fmt.Errorf("%w: %q appears twice", ErrDeskNameTaken, name)
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}

	var created []domain.Desk
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.deskRepo.CreateMany(txCtx, cleaned)
		return err
	})
	if err != nil {
		if errors.Is(err, deskRepo.ErrDuplicateName) {
			s.logger.Warn("Load: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrDeskNameTaken, err)
		}
		s.logger.Error("Load: failed to create desks: %v", err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Load: created %d desks", len(created))
	return created, nil
}

// Rename переименовывает стол
func (s *Service) Rename(ctx context.Context, id, name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	if err := s.deskRepo.UpdateName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, deskRepo.ErrDeskNotFound):
			s.logger.Warn("Rename: desk id=%s not found", id)
			return ErrDeskNotFound
		case errors.Is(err, deskRepo.ErrDuplicateName):
			s.logger.Warn("Rename: name %q already taken", name)
			return ErrDeskNameTaken
		default:
			s.logger.Error("Rename: failed to rename desk id=%s: %v", id, err)
			return fmt.Errorf("%w: Rename - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Rename: desk id=%s renamed to %q", id, name)
	return nil
}

// Delete удаляет стол и все его бронирования
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			s.logger.Warn("Delete: desk id=%s not found", id)
			return ErrDeskNotFound
		}
		s.logger.Error("Delete: failed to delete desk id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: desk id=%s deleted", id)
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: desk name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxDeskNameLength {
		return "", fmt.Errorf("%w: desk name longer than %d characters", ErrInvalidInput, domain.MaxDeskNameLength)
	}
	return name, nil
}
