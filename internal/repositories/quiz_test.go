package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizWriteRepository_SaveUpdateDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	groups := NewQuizGroupWriteRepository(db, nil)
	repo := NewQuizWriteRepository(db, nil)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	group, err := groups.Save(ctx, alice, "math", "", true)
	require.NoError(t, err)

	quiz, err := repo.Save(ctx, group.QuizGroupID, "Addition", "What is 2+2?")
	assert.NoError(t, err)
	assert.NotNil(t, quiz)
	assert.Equal(t, group.QuizGroupID, quiz.QuizGroupID)
	assert.Equal(t, "Addition", quiz.Title)

	t.Run("Update", func(t *testing.T) {
		updated, err := repo.Update(ctx, quiz.QuizID, "Subtraction", "What is 4-2?")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Subtraction", updated.Title)
		assert.Equal(t, "What is 4-2?", updated.Content)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		updated, err := repo.Update(ctx, uuid.New(), "x", "y")
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, quiz.QuizID))
		assert.Error(t, repo.Delete(ctx, quiz.QuizID))
	})
}

func TestQuizReadRepository_List_TransitiveVisibility(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	groups := NewQuizGroupWriteRepository(db, nil)
	writeRepo := NewQuizWriteRepository(db, nil)
	readRepo := NewQuizReadRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	alicePrivate, err := groups.Save(ctx, alice, "a-private", "", false)
	require.NoError(t, err)
	bobPublic, err := groups.Save(ctx, bob, "b-public", "", true)
	require.NoError(t, err)

	_, err = writeRepo.Save(ctx, alicePrivate.QuizGroupID, "Hidden", "only alice")
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, bobPublic.QuizGroupID, "Open", "everyone")
	require.NoError(t, err)

	titles := func(quizzes []models.QuizDB) []string {
		out := make([]string, 0, len(quizzes))
		for _, q := range quizzes {
			out = append(out, q.Title)
		}
		return out
	}

	t.Run("AnonymousSeesPublicGroupsOnly", func(t *testing.T) {
		quizzes, err := readRepo.List(ctx, nil, 100, 0)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Open"}, titles(quizzes))
	})

	t.Run("OwnerSeesOwnAndPublicOrderedByTitle", func(t *testing.T) {
		quizzes, err := readRepo.List(ctx, &alice, 100, 0)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Hidden", "Open"}, titles(quizzes))
	})
}

func TestQuizReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	groups := NewQuizGroupWriteRepository(db, nil)
	writeRepo := NewQuizWriteRepository(db, nil)
	readRepo := NewQuizReadRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	group, err := groups.Save(ctx, alice, "math", "", true)
	require.NoError(t, err)
	saved, err := writeRepo.Save(ctx, group.QuizGroupID, "Addition", "What is 2+2?")
	require.NoError(t, err)

	quiz, err := readRepo.GetByID(ctx, saved.QuizID)
	assert.NoError(t, err)
	assert.NotNil(t, quiz)
	assert.Equal(t, "Addition", quiz.Title)

	quiz, err = readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, quiz)
}

func TestQuizGroupDelete_CascadesQuizzes(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	groups := NewQuizGroupWriteRepository(db, nil)
	quizzes := NewQuizWriteRepository(db, nil)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	group, err := groups.Save(ctx, alice, "math", "", true)
	require.NoError(t, err)
	_, err = quizzes.Save(ctx, group.QuizGroupID, "Addition", "What is 2+2?")
	require.NoError(t, err)

	require.NoError(t, groups.Delete(ctx, group.QuizGroupID))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM quizzes WHERE quiz_group_id=$1", group.QuizGroupID))
	assert.Equal(t, 0, count)
}
