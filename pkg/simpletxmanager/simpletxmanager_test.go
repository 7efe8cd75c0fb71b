package simpletxmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/pkg/dbmetrics"
)

func TestDoCommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	err = m.Do(context.Background(), func(txCtx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(txCtx))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := NewTransactionManager(db)
	wantErr := errors.New("boom")
	err = m.Do(context.Background(), func(_ context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNestedDoJoinsActiveTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Ровно один Begin/Commit: вложенный Do работает в уже открытой транзакции
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	inner := 0
	err = m.Do(context.Background(), func(txCtx context.Context) error {
		return m.Do(txCtx, func(innerCtx context.Context) error {
			inner++
			assert.True(t, dbmetrics.IsInTransaction(innerCtx))
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoReadOnlyUsesReadOnlyOptions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	err = m.DoReadOnly(context.Background(), func(txCtx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(txCtx))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
