package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskService/pkg/psqlbuilder"
)

const (
	foreignKeyViolation = "23503"
	exclusionViolation  = "23P01"

	constraintDeskPeriod = "one_reservation_per_desk_per_period"
	constraintUserPeriod = "one_desk_per_user_per_period"
)

var reservationColumns = []string{"id", "desk_id", "user_id", "date_from", "date_to", "created_at"}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование одного интервала
// Если в контексте передана активная транзакция, использует её.
// Ограничения исключения в БД страхуют от гонок, которые не поймала проверка в транзакции
func (r *Repository) Create(ctx context.Context, deskID, userID string, slot domain.TimeSlot) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("desk_id", "user_id", "date_from", "date_to").
		Values(deskID, userID, slot.From, slot.To).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	res := &domain.Reservation{
		DeskID:        deskID,
		UserID:        userID,
		ReservedSlots: []domain.TimeSlot{slot},
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// GetConflictsForUpdate возвращает бронирования стола deskID или пользователя userID,
// строго пересекающиеся с интервалом, и блокирует их до конца транзакции
func (r *Repository) GetConflictsForUpdate(ctx context.Context, deskID, userID string, slot domain.TimeSlot) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Or{
			squirrel.Eq{"desk_id": deskID},
			squirrel.Eq{"user_id": userID},
		}).
		Where(squirrel.Lt{"date_from": slot.To}).
		Where(squirrel.Gt{"date_to": slot.From}).
		OrderBy("date_from ASC").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConflictsForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "GetConflictsForUpdate", query, args)
}

// ListByDeskBetween возвращает бронирования стола, строго пересекающиеся с [from, to)
func (r *Repository) ListByDeskBetween(ctx context.Context, deskID string, from, to time.Time) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"desk_id": deskID}).
		Where(squirrel.Lt{"date_from": to}).
		Where(squirrel.Gt{"date_to": from}).
		OrderBy("date_from ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDeskBetween - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByDeskBetween", query, args)
}

// ListByUser возвращает бронирования пользователя, отсортированные по началу
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date_from ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByUser", query, args)
}

// ListEndingAfter возвращает все бронирования, которые заканчиваются не раньше since
func (r *Repository) ListEndingAfter(ctx context.Context, since time.Time) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.GtOrEq{"date_to": since}).
		OrderBy("desk_id ASC", "date_from ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEndingAfter - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListEndingAfter", query, args)
}

// DeleteByID удаляет бронирование пользователя
// Чужое бронирование неотличимо от несуществующего
func (r *Repository) DeleteByID(ctx context.Context, userID, id string) error {
	affected, err := r.delete(ctx, "DeleteByID", squirrel.Eq{"id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// DeleteByIDs удаляет несколько бронирований пользователя и возвращает число удалённых
func (r *Repository) DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error) {
	return r.delete(ctx, "DeleteByIDs", squirrel.Eq{"id": ids, "user_id": userID})
}

// DeleteByUser удаляет все бронирования пользователя
func (r *Repository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return r.delete(ctx, "DeleteByUser", squirrel.Eq{"user_id": userID})
}

// DeleteEndedBefore удаляет бронирования, закончившиеся раньше cutoff
func (r *Repository) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.delete(ctx, "DeleteEndedBefore", squirrel.Lt{"date_to": cutoff})
}

func (r *Repository) delete(ctx context.Context, op string, where squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %w", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - rows affected: %w", ErrExecQuery, op, err)
	}

	return affected, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]domain.Reservation, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - query reservations: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var (
			res      domain.Reservation
			from, to time.Time
		)
		if err := rows.Scan(&res.ID, &res.DeskID, &res.UserID, &from, &to, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %w", ErrScanRow, op, err)
		}
		res.ReservedSlots = []domain.TimeSlot{{From: from, To: to}}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %w", ErrScanRow, op, err)
	}

	return reservations, nil
}

func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch {
	case pqErr.Code == foreignKeyViolation:
		return ErrDeskNotFound
	case pqErr.Code == exclusionViolation && pqErr.Constraint == constraintDeskPeriod:
		return ErrDeskAlreadyReserved
	case pqErr.Code == exclusionViolation && pqErr.Constraint == constraintUserPeriod:
		return ErrUserAlreadyReserved
	}

	return nil
}
