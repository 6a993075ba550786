package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DeskService/internal/infra/storage/reservation"
)

const (
	cancelModeSingle = "single"
	cancelModeGroup  = "group"
	cancelModeAll    = "all"
)

// Service сервис для просмотра и отмены бронирований пользователя
type Service struct {
	reservationRepo ReservationRepository
	deskRepo        DeskRepository
	txManager       TransactionManager
	metrics         Metrics
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
// location - зона, в которой бронирования группируются по календарным дням
func NewService(
	reservationRepo ReservationRepository,
	deskRepo DeskRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		deskRepo:        deskRepo,
		txManager:       txManager,
		metrics:         metrics,
		location:        location,
		logger:          logger,
	}
}

// ListByUser возвращает бронирования пользователя, отсортированные по началу
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	for i := range reservations {
		reservations[i].ReservedSlots = s.inLocation(reservations[i].ReservedSlots)
	}

	return reservations, nil
}

// ListGrouped возвращает бронирования пользователя, сгруппированные по столу и дню
func (s *Service) ListGrouped(ctx context.Context, userID string) ([]domain.GroupedReservation, error) {
	reservations, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	desks, err := s.deskRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListGrouped: failed to get desks: %v", err)
		return nil, fmt.Errorf("%w: ListGrouped - desk repository error: %v", ErrInternal, err)
	}

	names := make(map[string]string, len(desks))
	for _, d := range desks {
		names[d.ID] = d.Name
	}

	groups := availability.GroupReservations(reservations, names)
	s.logger.Info("ListGrouped: user=%s, %d reservations in %d groups", userID, len(reservations), len(groups))

	return groups, nil
}

// Cancel отменяет одно бронирование пользователя
func (s *Service) Cancel(ctx context.Context, userID, id string) error {
	if err := s.reservationRepo.DeleteByID(ctx, userID, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found for user=%s", id, userID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to delete reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.ObserveCancelled(cancelModeSingle, 1)
	s.logger.Info("Cancel: reservation id=%s cancelled by user=%s", id, userID)
	return nil
}

// CancelMany атомарно отменяет группу бронирований
// Если хотя бы одно не найдено, не отменяется ни одно
func (s *Service) CancelMany(ctx context.Context, userID string, ids []string) error {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return fmt.Errorf("%w: reservationIds is empty", ErrInvalidInput)
	}
	if len(unique) > domain.MaxReservationsPerCall {
		return fmt.Errorf("%w: at most %d reservations per call", ErrInvalidInput, domain.MaxReservationsPerCall)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		deleted, err := s.reservationRepo.DeleteByIDs(txCtx, userID, unique)
		if err != nil {
			return fmt.Errorf("%w: CancelMany - repository error: %v", ErrInternal, err)
		}
		if deleted != int64(len(unique)) {
			return fmt.Errorf("%w: %d of %d reservations found", ErrReservationNotFound, deleted, len(unique))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("CancelMany: user=%s: %v", userID, err)
		} else {
			s.logger.Error("CancelMany: user=%s: %v", userID, err)
		}
		return err
	}

	s.metrics.ObserveCancelled(cancelModeGroup, len(unique))
	s.logger.Info("CancelMany: %d reservations cancelled by user=%s", len(unique), userID)
	return nil
}

// CancelAll отменяет все бронирования пользователя
func (s *Service) CancelAll(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.reservationRepo.DeleteByUser(ctx, userID)
	if err != nil {
		s.logger.Error("CancelAll: failed to delete reservations of user=%s: %v", userID, err)
		return 0, fmt.Errorf("%w: CancelAll - repository error: %v", ErrInternal, err)
	}
	if deleted == 0 {
		s.logger.Warn("CancelAll: user=%s has no reservations", userID)
		return 0, ErrReservationNotFound
	}

	s.metrics.ObserveCancelled(cancelModeAll, int(deleted))
	s.logger.Info("CancelAll: %d reservations cancelled by user=%s", deleted, userID)
	return deleted, nil
}

func (s *Service) inLocation(slots []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, domain.TimeSlot{From: slot.From.In(s.location), To: slot.To.In(s.location)})
	}
	return result
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
