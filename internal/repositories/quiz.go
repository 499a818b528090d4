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

const quizColumns = `q.quiz_id, q.quiz_group_id, q.quiz_title, q.quiz_content, q.created_at, q.updated_at`

// QuizReadRepository handles quiz read operations
type QuizReadRepository struct {
	db *sqlx.DB
}

func NewQuizReadRepository(db *sqlx.DB) *QuizReadRepository {
	return &QuizReadRepository{db: db}
}

// List returns the quizzes whose parent group is visible to the given
// principal, ordered by title. Visibility is transitive: a quiz is visible iff
// its parent group is owned by the principal or public.
func (r *QuizReadRepository) List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizDB, error) {
	const query = `
		SELECT ` + quizColumns + `
		FROM quizzes q
		JOIN quiz_groups g ON g.quiz_group_id = q.quiz_group_id
		WHERE ($1::UUID IS NOT NULL AND g.user_id = $1) OR g.scope = TRUE
		ORDER BY q.quiz_title, q.quiz_id
		LIMIT $2 OFFSET $3
	`

	quizzes := []models.QuizDB{}
	err := r.db.SelectContext(ctx, &quizzes, query, userID, limit, offset)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(quizzes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return quizzes, nil
}

// GetByID returns a quiz row regardless of visibility, or nil if absent.
func (r *QuizReadRepository) GetByID(ctx context.Context, quizID uuid.UUID) (*models.QuizDB, error) {
	const query = `
		SELECT ` + quizColumns + `
		FROM quizzes q
		WHERE q.quiz_id = $1
	`

	var quiz models.QuizDB
	err := r.db.GetContext(ctx, &quiz, query, quizID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

// QuizWriteRepository handles quiz write operations
type QuizWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuizWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuizWriteRepository {
	return &QuizWriteRepository{db: db, txGetter: txGetter}
}

func (r *QuizWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new quiz into the given group.
func (r *QuizWriteRepository) Save(ctx context.Context, quizGroupID uuid.UUID, title, content string) (*models.QuizDB, error) {
	const query = `
		INSERT INTO quizzes (quiz_id, quiz_group_id, quiz_title, quiz_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING quiz_id, quiz_group_id, quiz_title, quiz_content, created_at, updated_at
	`
	args := []any{uuid.New(), quizGroupID, title, content}

	var quiz models.QuizDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &quiz, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &quiz, nil
}

// Update rewrites the title and content of an existing quiz. Returns nil if
// the row vanished.
func (r *QuizWriteRepository) Update(ctx context.Context, quizID uuid.UUID, title, content string) (*models.QuizDB, error) {
	const query = `
		UPDATE quizzes
		SET quiz_title = $2, quiz_content = $3, updated_at = NOW()
		WHERE quiz_id = $1
		RETURNING quiz_id, quiz_group_id, quiz_title, quiz_content, created_at, updated_at
	`
	args := []any{quizID, title, content}

	var quiz models.QuizDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &quiz, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

// Delete removes a quiz.
func (r *QuizWriteRepository) Delete(ctx context.Context, quizID uuid.UUID) error {
	const query = `DELETE FROM quizzes WHERE quiz_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, quizID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizID},
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
