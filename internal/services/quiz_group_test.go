package services

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/models"
	"github.com/quisapi/quisapi/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestQuizGroupService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groups := []models.QuizGroupDB{
		{QuizGroupID: uuid.New(), Name: "algebra", Scope: true},
		{QuizGroupID: uuid.New(), Name: "geometry", UserID: userID},
	}

	reader := NewMockQuizGroupReader(ctrl)
	reader.EXPECT().List(ctx, &userID, 10, 0).Return(groups, nil)

	svc := NewQuizGroupService(reader, nil)
	got, err := svc.List(ctx, &userID, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, groups, got)
}

func TestQuizGroupService_Get_Visibility(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	groupID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	private := &models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "secret", Scope: false}

	tests := []struct {
		name      string
		principal *uuid.UUID
		group     *models.QuizGroupDB
		wantErr   error
	}{
		{name: "owner sees own private group", principal: &owner, group: private},
		{name: "stranger cannot see private group", principal: &stranger, group: private, wantErr: ErrQuizGroupNotFound},
		{name: "anonymous cannot see private group", principal: nil, group: private, wantErr: ErrQuizGroupNotFound},
		{name: "missing group", principal: &owner, group: nil, wantErr: ErrQuizGroupNotFound},
		{
			name:      "anonymous sees public group",
			principal: nil,
			group:     &models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math", Scope: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockQuizGroupReader(ctrl)
			reader.EXPECT().GetByID(ctx, groupID).Return(tt.group, nil)

			svc := NewQuizGroupService(reader, nil)
			got, err := svc.Get(ctx, tt.principal, groupID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.group, got)
		})
	}
}

func TestQuizGroupService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		writer := NewMockQuizGroupWriter(ctrl)
		writer.EXPECT().Save(ctx, userID, "math", "school math", true).
			Return(&models.QuizGroupDB{QuizGroupID: uuid.New(), UserID: userID, Name: "math", Scope: true}, nil)

		svc := NewQuizGroupService(nil, writer)
		group, err := svc.Create(ctx, userID, "math", "school math", true)
		assert.NoError(t, err)
		assert.Equal(t, "math", group.Name)
	})

	t.Run("empty name", func(t *testing.T) {
		svc := NewQuizGroupService(nil, NewMockQuizGroupWriter(ctrl))
		_, err := svc.Create(ctx, userID, "", "", false)
		assert.ErrorIs(t, err, ErrQuizGroupInvalid)
	})

	t.Run("name too long", func(t *testing.T) {
		svc := NewQuizGroupService(nil, NewMockQuizGroupWriter(ctrl))
		_, err := svc.Create(ctx, userID, strings.Repeat("x", models.MaxQuizGroupNameLen+1), "", false)
		assert.ErrorIs(t, err, ErrQuizGroupInvalid)
	})

	t.Run("multibyte name within character limit", func(t *testing.T) {
		// 30 characters, 90 bytes: byte counting would reject this.
		name := strings.Repeat("あ", 30)

		writer := NewMockQuizGroupWriter(ctrl)
		writer.EXPECT().Save(ctx, userID, name, "", true).
			Return(&models.QuizGroupDB{QuizGroupID: uuid.New(), UserID: userID, Name: name, Scope: true}, nil)

		svc := NewQuizGroupService(nil, writer)
		group, err := svc.Create(ctx, userID, name, "", true)
		assert.NoError(t, err)
		assert.Equal(t, name, group.Name)
	})

	t.Run("multibyte name over character limit", func(t *testing.T) {
		svc := NewQuizGroupService(nil, NewMockQuizGroupWriter(ctrl))
		_, err := svc.Create(ctx, userID, strings.Repeat("あ", models.MaxQuizGroupNameLen+1), "", false)
		assert.ErrorIs(t, err, ErrQuizGroupInvalid)
	})

	t.Run("duplicate name for owner", func(t *testing.T) {
		writer := NewMockQuizGroupWriter(ctrl)
		writer.EXPECT().Save(ctx, userID, "math", "", false).
			Return(nil, repositories.ErrQuizGroupNameTaken)

		svc := NewQuizGroupService(nil, writer)
		_, err := svc.Create(ctx, userID, "math", "", false)
		assert.ErrorIs(t, err, ErrQuizGroupNameTaken)
	})
}

func TestQuizGroupService_Update_Guard(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	groupID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("owner updates", func(t *testing.T) {
		reader := NewMockQuizGroupReader(ctrl)
		writer := NewMockQuizGroupWriter(ctrl)

		reader.EXPECT().GetByID(ctx, groupID).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math", Scope: true}, nil)
		writer.EXPECT().Update(ctx, groupID, "math II", "harder", true).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math II", Scope: true}, nil)

		svc := NewQuizGroupService(reader, writer)
		group, err := svc.Update(ctx, owner, groupID, "math II", "harder", true)
		assert.NoError(t, err)
		assert.Equal(t, "math II", group.Name)
	})

	t.Run("non-owner of public group gets forbidden", func(t *testing.T) {
		reader := NewMockQuizGroupReader(ctrl)

		reader.EXPECT().GetByID(ctx, groupID).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math", Scope: true}, nil)

		svc := NewQuizGroupService(reader, NewMockQuizGroupWriter(ctrl))
		_, err := svc.Update(ctx, stranger, groupID, "math II", "", true)
		assert.ErrorIs(t, err, ErrQuizGroupForbidden)
	})

	t.Run("owner renames to multibyte name within character limit", func(t *testing.T) {
		name := strings.Repeat("数", models.MaxQuizGroupNameLen)

		reader := NewMockQuizGroupReader(ctrl)
		writer := NewMockQuizGroupWriter(ctrl)

		reader.EXPECT().GetByID(ctx, groupID).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math", Scope: true}, nil)
		writer.EXPECT().Update(ctx, groupID, name, "", true).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: name, Scope: true}, nil)

		svc := NewQuizGroupService(reader, writer)
		group, err := svc.Update(ctx, owner, groupID, name, "", true)
		assert.NoError(t, err)
		assert.Equal(t, name, group.Name)
	})

	t.Run("non-owner of private group gets not found", func(t *testing.T) {
		reader := NewMockQuizGroupReader(ctrl)

		reader.EXPECT().GetByID(ctx, groupID).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "secret", Scope: false}, nil)

		svc := NewQuizGroupService(reader, NewMockQuizGroupWriter(ctrl))
		_, err := svc.Update(ctx, stranger, groupID, "secret II", "", false)
		assert.ErrorIs(t, err, ErrQuizGroupNotFound)
	})
}

func TestQuizGroupService_Delete_Guard(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	groupID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("owner deletes", func(t *testing.T) {
		reader := NewMockQuizGroupReader(ctrl)
		writer := NewMockQuizGroupWriter(ctrl)

		reader.EXPECT().GetByID(ctx, groupID).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math", Scope: true}, nil)
		writer.EXPECT().Delete(ctx, groupID).Return(nil)

		svc := NewQuizGroupService(reader, writer)
		assert.NoError(t, svc.Delete(ctx, owner, groupID))
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		reader := NewMockQuizGroupReader(ctrl)

		reader.EXPECT().GetByID(ctx, groupID).
			Return(&models.QuizGroupDB{QuizGroupID: groupID, UserID: owner, Name: "math", Scope: true}, nil)

		svc := NewQuizGroupService(reader, NewMockQuizGroupWriter(ctrl))
		err := svc.Delete(ctx, stranger, groupID)
		assert.ErrorIs(t, err, ErrQuizGroupForbidden)
	})
}
