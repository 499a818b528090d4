package tx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/quisapi/quisapi/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// With stores a transaction in the context.
func With(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// From retrieves the transaction from the context. Returns nil if not present.
func From(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// maxAttempts bounds retries of a unit of work that failed with a
// serialization or deadlock error.
const maxAttempts = 3

// Run executes fn inside a single database transaction. The transaction is
// stored in the context passed to fn so repositories join it via their
// txGetter hook. Everything fn does commits or rolls back as one unit.
// Serialization failures and deadlocks are retried up to maxAttempts times;
// any other error rolls back and is returned as is.
func Run(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = runOnce(ctx, db, fn)
		if err == nil || !Retryable(err) {
			return err
		}
		logger.Log.Warnw("transaction conflict, retrying",
			"attempt", attempt,
			"error", err,
		)
	}
	return err
}

func runOnce(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	txx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			txx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(With(ctx, txx)); err != nil {
		txx.Rollback()
		return err
	}

	return txx.Commit()
}

// Retryable reports whether err is a transient storage conflict
// (serialization failure or deadlock) worth retrying.
func Retryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
