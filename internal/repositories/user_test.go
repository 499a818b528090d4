package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Save(ctx, "alice", "hash123", "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice", "otherhash", "alice2@example.com")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice2", "otherhash", "alice@example.com")
		assert.ErrorIs(t, err, ErrUserExists)
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "secret", "charlie@example.com")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "secret2", "dave@example.com")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("EitherMatches", func(t *testing.T) {
		// Username of one user, email of another: any collision counts.
		username := "charlie"
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
