package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/pkg/dbmetrics"
)

func TestTransactionManager_DoSerializable(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.DoSerializable(ctx, func(txCtx context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(txCtx))
			return nil
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.DoSerializable(ctx, func(context.Context) error { return boom })

		assert.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call reuses transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.Do(ctx, func(txCtx context.Context) error {
			return m.DoSerializable(txCtx, func(context.Context) error { return nil })
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.Do(ctx, func(context.Context) error { return nil })

		assert.ErrorIs(t, err, ErrTransaction)
	})

	t.Run("read only commit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
		mock.ExpectCommit()

		wrapped := dbmetrics.Wrap(db, nil)
		m := NewTransactionManager(wrapped)
		err = m.DoReadOnly(ctx, func(txCtx context.Context) error {
			var n int
			return dbmetrics.GetExecutor(txCtx, wrapped).QueryRowContext(txCtx, "SELECT 1").Scan(&n)
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionManager_DoSerializable_Retry(t *testing.T) {
	ctx := context.Background()
	conflict := &pq.Error{Code: "40001", Message: "could not serialize access"}

	t.Run("commit conflict is retried", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(conflict)
		mock.ExpectBegin()
		mock.ExpectCommit()

		calls := 0
		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.DoSerializable(ctx, func(context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict inside fn is retried", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectCommit()

		calls := 0
		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.DoSerializable(ctx, func(context.Context) error {
			calls++
			if calls == 1 {
				return fmt.Errorf("select conflicts: %w", conflict)
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for i := 0; i < MaxSerializableAttempts; i++ {
			mock.ExpectBegin()
			mock.ExpectCommit().WillReturnError(conflict)
		}

		calls := 0
		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.DoSerializable(ctx, func(context.Context) error {
			calls++
			return nil
		})

		assert.ErrorIs(t, err, ErrSerialization)
		assert.True(t, IsSerializationFailure(err))
		assert.Equal(t, MaxSerializableAttempts, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		calls := 0
		boom := errors.New("boom")
		m := NewTransactionManager(dbmetrics.Wrap(db, nil))
		err = m.DoSerializable(ctx, func(context.Context) error {
			calls++
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrSerialization)
		assert.Equal(t, 1, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
