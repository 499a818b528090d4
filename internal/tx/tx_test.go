package tx

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRun_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := Run(context.Background(), db, func(ctx context.Context) error {
		called = true
		assert.NotNil(t, From(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := Run(context.Background(), db, func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)

	serErr := &pgconn.PgError{Code: "40001"}

	// Two conflicting attempts, third one succeeds.
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	attempts := 0
	err := Run(context.Background(), db, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return serErr
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newMockDB(t)

	serErr := &pgconn.PgError{Code: "40001"}
	for i := 0; i < maxAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	attempts := 0
	err := Run(context.Background(), db, func(ctx context.Context) error {
		attempts++
		return serErr
	})

	assert.Error(t, err)
	assert.True(t, Retryable(err))
	assert.Equal(t, maxAttempts, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, Retryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, Retryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, Retryable(errors.New("other")))
	assert.False(t, Retryable(nil))
}

func TestFrom_EmptyContext(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
