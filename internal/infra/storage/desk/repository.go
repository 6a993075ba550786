package desk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var deskColumns = []string{"id", "name", "created_at", "updated_at"}

// Repository репозиторий для работы со столами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateMany создает столы по списку имён
// Атомарность обеспечивает вызывающий код: вызывать внутри транзакции из контекста
func (r *Repository) CreateMany(ctx context.Context, names []string) ([]domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	desks := make([]domain.Desk, 0, len(names))
	for _, name := range names {
		query, args, err := psqlbuilder.Insert("desks").
			Columns("name").
			Values(name).
			Suffix("RETURNING id, name, created_at, updated_at").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: CreateMany - build insert query: %v", ErrBuildQuery, err)
		}

		var d domain.Desk
		err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
			}
			return nil, fmt.Errorf("%w: CreateMany - insert desk %q: %w", ErrExecQuery, name, err)
		}

		desks = append(desks, d)
	}

	return desks, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Desk
	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan desk: %w", ErrScanRow, err)
	}

	return &d, nil
}

// List возвращает все столы, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - query desks: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]domain.Desk, 0)
	for rows.Next() {
		var d domain.Desk
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan desk: %w", ErrScanRow, err)
		}
		desks = append(desks, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %w", ErrScanRow, err)
	}

	return desks, nil
}

// UpdateName переименовывает стол
func (r *Repository) UpdateName(ctx context.Context, id, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("desks").
		Set("name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateName - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return fmt.Errorf("%w: UpdateName - execute update: %w", ErrExecQuery, err)
	}

	return requireAffected(result, "UpdateName")
}

// Delete удаляет стол вместе с его бронированиями (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	return requireAffected(result, "Delete")
}

func requireAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %w", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrDeskNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
