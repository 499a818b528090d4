package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/quisapi/quisapi/internal/logger"
)

// Ledger errors
var (
	ErrFollowerExists       = errors.New("follower row already exists")
	ErrFollowerNotFound     = errors.New("follower row not found")
	ErrFollowedGroupMissing = errors.New("followed quiz group does not exist")
)

// FollowerWriteRepository maintains the followers table together with the
// denormalized followings counter on quiz_groups. Both statements of each
// operation must run on the same transaction: callers are expected to provide
// one through the txGetter hook, otherwise the counter could drift from the
// true row count.
type FollowerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFollowerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FollowerWriteRepository {
	return &FollowerWriteRepository{db: db, txGetter: txGetter}
}

func (r *FollowerWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a follower row for (userID, quizGroupID) and increments the
// group counter, returning the new counter value. The increment is applied at
// the storage layer, never computed from a previously read value, so
// concurrent follows cannot lose updates. A duplicate follow surfaces as
// ErrFollowerExists via the (user, group) uniqueness constraint.
func (r *FollowerWriteRepository) Save(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error) {
	executor := r.executor(ctx)

	const insert = `
		INSERT INTO followers (follower_id, user_id, quiz_group_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{uuid.New(), userID, quizGroupID}

	_, err := executor.ExecContext(ctx, insert, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insert), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return 0, ErrFollowerExists
		case pgForeignKeyViolation:
			return 0, ErrFollowedGroupMissing
		}
		return 0, err
	}

	const increment = `
		UPDATE quiz_groups
		SET followings = followings + 1, updated_at = NOW()
		WHERE quiz_group_id = $1
		RETURNING followings
	`

	var followings int64
	err = sqlx.GetContext(ctx, executor, &followings, increment, quizGroupID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(increment), " "),
		"args", []any{quizGroupID},
		"result", followings,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrFollowedGroupMissing
		}
		return 0, err
	}

	return followings, nil
}

// Delete removes the follower row for (userID, quizGroupID) and decrements the
// group counter, returning the new counter value. The delete runs first; only
// a request that actually removed a row reaches the decrement, and the
// followings > 0 guard keeps the counter from ever going negative.
func (r *FollowerWriteRepository) Delete(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error) {
	executor := r.executor(ctx)

	const del = `DELETE FROM followers WHERE user_id = $1 AND quiz_group_id = $2`
	args := []any{userID, quizGroupID}

	res, err := executor.ExecContext(ctx, del, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(del), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	if rowsAffected == 0 {
		return 0, ErrFollowerNotFound
	}

	const decrement = `
		UPDATE quiz_groups
		SET followings = followings - 1, updated_at = NOW()
		WHERE quiz_group_id = $1 AND followings > 0
		RETURNING followings
	`

	var followings int64
	err = sqlx.GetContext(ctx, executor, &followings, decrement, quizGroupID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(decrement), " "),
		"args", []any{quizGroupID},
		"result", followings,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Group deleted concurrently or counter already at zero;
			// the row delete above is the source of truth.
			return 0, nil
		}
		return 0, err
	}

	return followings, nil
}

// FollowerReadRepository handles follower read operations
type FollowerReadRepository struct {
	db *sqlx.DB
}

func NewFollowerReadRepository(db *sqlx.DB) *FollowerReadRepository {
	return &FollowerReadRepository{db: db}
}

// CountByQuizGroup returns the true number of follower rows for a group.
func (r *FollowerReadRepository) CountByQuizGroup(ctx context.Context, quizGroupID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM followers WHERE quiz_group_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, quizGroupID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizGroupID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}
