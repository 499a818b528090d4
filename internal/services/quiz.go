package services

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
)

// Error variables
var (
	ErrQuizNotFound  = errors.New("quiz not found")
	ErrQuizForbidden = errors.New("quiz does not belong to user")
	ErrQuizInvalid   = errors.New("invalid quiz attributes")
)

// QuizReader defines read-only operations for quizzes.
type QuizReader interface {
	List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizDB, error)
	GetByID(ctx context.Context, quizID uuid.UUID) (*models.QuizDB, error)
}

// QuizWriter defines write operations for quizzes.
type QuizWriter interface {
	Save(ctx context.Context, quizGroupID uuid.UUID, title, content string) (*models.QuizDB, error)
	Update(ctx context.Context, quizID uuid.UUID, title, content string) (*models.QuizDB, error)
	Delete(ctx context.Context, quizID uuid.UUID) error
}

// QuizService handles quiz CRUD. Visibility and ownership are transitive
// through the parent quiz group.
type QuizService struct {
	reader QuizReader
	writer QuizWriter
	groups QuizGroupReader
}

// NewQuizService creates a new QuizService instance.
func NewQuizService(reader QuizReader, writer QuizWriter, groups QuizGroupReader) *QuizService {
	return &QuizService{
		reader: reader,
		writer: writer,
		groups: groups,
	}
}

// validQuiz checks the quiz length limits; they count characters, not bytes.
func validQuiz(title, content string) bool {
	if title == "" || utf8.RuneCountInString(title) > models.MaxQuizTitleLen {
		return false
	}
	if content == "" || utf8.RuneCountInString(content) > models.MaxQuizContentLen {
		return false
	}
	return true
}

// List returns the quizzes whose parent group is visible to the principal,
// ordered by title. userID is nil for anonymous principals.
func (svc *QuizService) List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizDB, error) {
	quizzes, err := svc.reader.List(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list quizzes", "err", err)
		return nil, err
	}
	return quizzes, nil
}

// Get returns a single quiz if its parent group is visible to the principal.
func (svc *QuizService) Get(ctx context.Context, userID *uuid.UUID, quizID uuid.UUID) (*models.QuizDB, error) {
	quiz, err := svc.reader.GetByID(ctx, quizID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz", "quizID", quizID, "err", err)
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	group, err := svc.groups.GetByID(ctx, quiz.QuizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get parent quiz group", "quizGroupID", quiz.QuizGroupID, "err", err)
		return nil, err
	}
	if group == nil || !groupVisibleTo(group, userID) {
		return nil, ErrQuizNotFound
	}

	return quiz, nil
}

// Create adds a quiz to a group. Only the group's owner may add quizzes; a
// private group owned by someone else reads as missing.
func (svc *QuizService) Create(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID, title, content string) (*models.QuizDB, error) {
	if !validQuiz(title, content) {
		return nil, ErrQuizInvalid
	}

	group, err := svc.groups.GetByID(ctx, quizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get parent quiz group", "quizGroupID", quizGroupID, "err", err)
		return nil, err
	}
	if group == nil || !groupVisibleTo(group, &userID) {
		return nil, ErrQuizGroupNotFound
	}
	if group.UserID != userID {
		return nil, ErrQuizForbidden
	}

	quiz, err := svc.writer.Save(ctx, quizGroupID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save quiz", "quizGroupID", quizGroupID, "title", title, "err", err)
		return nil, err
	}

	return quiz, nil
}

// ownedQuiz authorizes a mutation on a quiz through its parent group's owner.
func (svc *QuizService) ownedQuiz(ctx context.Context, userID uuid.UUID, quizID uuid.UUID) (*models.QuizDB, error) {
	quiz, err := svc.reader.GetByID(ctx, quizID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz", "quizID", quizID, "err", err)
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	group, err := svc.groups.GetByID(ctx, quiz.QuizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get parent quiz group", "quizGroupID", quiz.QuizGroupID, "err", err)
		return nil, err
	}
	if group == nil || !groupVisibleTo(group, &userID) {
		return nil, ErrQuizNotFound
	}
	if group.UserID != userID {
		return nil, ErrQuizForbidden
	}

	return quiz, nil
}

// Update rewrites a quiz's title and content. Only the parent group's owner
// may update.
func (svc *QuizService) Update(ctx context.Context, userID uuid.UUID, quizID uuid.UUID, title, content string) (*models.QuizDB, error) {
	if !validQuiz(title, content) {
		return nil, ErrQuizInvalid
	}

	if _, err := svc.ownedQuiz(ctx, userID, quizID); err != nil {
		return nil, err
	}

	quiz, err := svc.writer.Update(ctx, quizID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update quiz", "quizID", quizID, "err", err)
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	return quiz, nil
}

// Delete removes a quiz. Only the parent group's owner may delete.
func (svc *QuizService) Delete(ctx context.Context, userID uuid.UUID, quizID uuid.UUID) error {
	if _, err := svc.ownedQuiz(ctx, userID, quizID); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrQuizNotFound
		}
		logger.Log.Errorw("failed to delete quiz", "quizID", quizID, "err", err)
		return err
	}

	return nil
}
