package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
)

// ErrQuizGroupNameTaken is returned when an insert or update collides with the
// (owner, name) uniqueness constraint.
var ErrQuizGroupNameTaken = errors.New("quiz group name already taken for this user")

const quizGroupColumns = `quiz_group_id, user_id, quiz_group_name, quiz_group_description, scope, followings, created_at, updated_at`

// QuizGroupReadRepository handles quiz group read operations
type QuizGroupReadRepository struct {
	db *sqlx.DB
}

func NewQuizGroupReadRepository(db *sqlx.DB) *QuizGroupReadRepository {
	return &QuizGroupReadRepository{db: db}
}

// List returns the groups visible to the given principal, ordered by name.
// userID is nil for anonymous principals, who see public groups only; an
// authenticated principal additionally sees their own groups. The predicate
// matches owned-and-public rows once, so no DISTINCT is needed.
func (r *QuizGroupReadRepository) List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizGroupDB, error) {
	const query = `
		SELECT ` + quizGroupColumns + `
		FROM quiz_groups
		WHERE ($1::UUID IS NOT NULL AND user_id = $1) OR scope = TRUE
		ORDER BY quiz_group_name, quiz_group_id
		LIMIT $2 OFFSET $3
	`

	groups := []models.QuizGroupDB{}
	err := r.db.SelectContext(ctx, &groups, query, userID, limit, offset)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(groups),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return groups, nil
}

// GetByID returns a group row regardless of visibility, or nil if absent.
// Visibility decisions belong to the service layer.
func (r *QuizGroupReadRepository) GetByID(ctx context.Context, quizGroupID uuid.UUID) (*models.QuizGroupDB, error) {
	const query = `
		SELECT ` + quizGroupColumns + `
		FROM quiz_groups
		WHERE quiz_group_id = $1
	`

	var group models.QuizGroupDB
	err := r.db.GetContext(ctx, &group, query, quizGroupID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizGroupID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}

// QuizGroupWriteRepository handles quiz group write operations
type QuizGroupWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuizGroupWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuizGroupWriteRepository {
	return &QuizGroupWriteRepository{db: db, txGetter: txGetter}
}

func (r *QuizGroupWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new quiz group owned by userID.
func (r *QuizGroupWriteRepository) Save(ctx context.Context, userID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error) {
	const query = `
		INSERT INTO quiz_groups (quiz_group_id, user_id, quiz_group_name, quiz_group_description, scope, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + quizGroupColumns + `
	`
	args := []any{uuid.New(), userID, name, description, scope}

	var group models.QuizGroupDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &group, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, ErrQuizGroupNameTaken
		}
		return nil, err
	}

	return &group, nil
}

// Update rewrites the mutable attributes of an existing group. Returns nil if
// the row vanished.
func (r *QuizGroupWriteRepository) Update(ctx context.Context, quizGroupID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error) {
	const query = `
		UPDATE quiz_groups
		SET quiz_group_name = $2, quiz_group_description = $3, scope = $4, updated_at = NOW()
		WHERE quiz_group_id = $1
		RETURNING ` + quizGroupColumns + `
	`
	args := []any{quizGroupID, name, description, scope}

	var group models.QuizGroupDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &group, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if pgErrCode(err) == pgUniqueViolation {
			return nil, ErrQuizGroupNameTaken
		}
		return nil, err
	}

	return &group, nil
}

// Delete removes a group; its quizzes and follower rows cascade at the
// storage layer.
func (r *QuizGroupWriteRepository) Delete(ctx context.Context, quizGroupID uuid.UUID) error {
	const query = `DELETE FROM quiz_groups WHERE quiz_group_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, quizGroupID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizGroupID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
