package services

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
	"github.com/quisapi/quisapi/internal/repositories"
)

// Error variables
var (
	ErrQuizGroupNotFound  = errors.New("quiz group not found")
	ErrQuizGroupForbidden = errors.New("quiz group does not belong to user")
	ErrQuizGroupNameTaken = errors.New("quiz group name already taken for this user")
	ErrQuizGroupInvalid   = errors.New("invalid quiz group attributes")
)

// QuizGroupReader defines read-only operations for quiz groups.
type QuizGroupReader interface {
	List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizGroupDB, error)
	GetByID(ctx context.Context, quizGroupID uuid.UUID) (*models.QuizGroupDB, error)
}

// QuizGroupWriter defines write operations for quiz groups.
type QuizGroupWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error)
	Update(ctx context.Context, quizGroupID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error)
	Delete(ctx context.Context, quizGroupID uuid.UUID) error
}

// groupVisibleTo reports whether a principal may read the group. A nil userID
// is an anonymous principal, who sees public groups only.
func groupVisibleTo(group *models.QuizGroupDB, userID *uuid.UUID) bool {
	if group.Scope {
		return true
	}
	return userID != nil && group.UserID == *userID
}

// QuizGroupService handles quiz group CRUD with visibility filtering and
// ownership authorization.
type QuizGroupService struct {
	reader QuizGroupReader
	writer QuizGroupWriter
}

// NewQuizGroupService creates a new QuizGroupService instance.
func NewQuizGroupService(reader QuizGroupReader, writer QuizGroupWriter) *QuizGroupService {
	return &QuizGroupService{
		reader: reader,
		writer: writer,
	}
}

// List returns the groups visible to the principal, ordered by name.
// userID is nil for anonymous principals.
func (svc *QuizGroupService) List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizGroupDB, error) {
	groups, err := svc.reader.List(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list quiz groups", "err", err)
		return nil, err
	}
	return groups, nil
}

// Get returns a single group if it is visible to the principal. An invisible
// private group is indistinguishable from a missing one.
func (svc *QuizGroupService) Get(ctx context.Context, userID *uuid.UUID, quizGroupID uuid.UUID) (*models.QuizGroupDB, error) {
	group, err := svc.reader.GetByID(ctx, quizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz group", "quizGroupID", quizGroupID, "err", err)
		return nil, err
	}
	if group == nil || !groupVisibleTo(group, userID) {
		return nil, ErrQuizGroupNotFound
	}
	return group, nil
}

// Create creates a group owned by userID. Any authenticated principal may
// create groups; the (owner, name) pair must be unique.
func (svc *QuizGroupService) Create(ctx context.Context, userID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error) {
	// Length limits count characters, not bytes.
	if name == "" || utf8.RuneCountInString(name) > models.MaxQuizGroupNameLen {
		return nil, ErrQuizGroupInvalid
	}

	group, err := svc.writer.Save(ctx, userID, name, description, scope)
	if err != nil {
		if errors.Is(err, repositories.ErrQuizGroupNameTaken) {
			return nil, ErrQuizGroupNameTaken
		}
		logger.Log.Errorw("failed to save quiz group", "userID", userID, "name", name, "err", err)
		return nil, err
	}

	return group, nil
}

// ownedGroup authorizes a mutation: the group must exist, be visible to the
// principal and be owned by them. The order of checks keeps private groups
// hidden from non-owners.
func (svc *QuizGroupService) ownedGroup(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID) (*models.QuizGroupDB, error) {
	group, err := svc.reader.GetByID(ctx, quizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz group", "quizGroupID", quizGroupID, "err", err)
		return nil, err
	}
	if group == nil || !groupVisibleTo(group, &userID) {
		return nil, ErrQuizGroupNotFound
	}
	if group.UserID != userID {
		return nil, ErrQuizGroupForbidden
	}
	return group, nil
}

// Update rewrites a group's attributes. Only the owner may update.
func (svc *QuizGroupService) Update(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error) {
	if name == "" || utf8.RuneCountInString(name) > models.MaxQuizGroupNameLen {
		return nil, ErrQuizGroupInvalid
	}

	if _, err := svc.ownedGroup(ctx, userID, quizGroupID); err != nil {
		return nil, err
	}

	group, err := svc.writer.Update(ctx, quizGroupID, name, description, scope)
	if err != nil {
		if errors.Is(err, repositories.ErrQuizGroupNameTaken) {
			return nil, ErrQuizGroupNameTaken
		}
		logger.Log.Errorw("failed to update quiz group", "quizGroupID", quizGroupID, "err", err)
		return nil, err
	}
	if group == nil {
		return nil, ErrQuizGroupNotFound
	}

	return group, nil
}

// Delete removes a group and, through storage-level cascades, its quizzes and
// follower rows. Only the owner may delete.
func (svc *QuizGroupService) Delete(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID) error {
	if _, err := svc.ownedGroup(ctx, userID, quizGroupID); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, quizGroupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrQuizGroupNotFound
		}
		logger.Log.Errorw("failed to delete quiz group", "quizGroupID", quizGroupID, "err", err)
		return err
	}

	return nil
}
