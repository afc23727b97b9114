package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_BeginSetsLockTimeout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout = '2500ms'`).WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectCommit()

	tx, err := NewTransactor(mock, 2500*time.Millisecond).Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginWithoutLockTimeout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := NewTransactor(mock, 0).Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_LockTimeoutFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout`).WillReturnError(errors.New("conn reset"))
	mock.ExpectRollback()

	_, err = NewTransactor(mock, time.Second).Begin(context.Background())
	assert.ErrorContains(t, err, "set lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

	_, err = NewTransactor(mock, time.Second).Begin(context.Background())
	assert.ErrorContains(t, err, "begin transaction")
}
