package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/jwt"
	"github.com/quisapi/quisapi/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListQuizGroupsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	groupID := uuid.New()

	t.Run("authenticated caller passes principal", func(t *testing.T) {
		mockSvc := NewMockQuizGroupLister(ctrl)
		mockTokener := NewMockTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
		mockSvc.EXPECT().
			List(gomock.Any(), &userID, defaultPageSize, 0).
			Return([]models.QuizGroupDB{
				{QuizGroupID: groupID, UserID: userID, Name: "algebra", Scope: true, Followings: 3},
			}, nil)

		handler := NewListQuizGroupsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/quiz-groups", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []QuizGroupResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "algebra", resp[0].QuizGroupName)
		assert.Equal(t, int64(3), resp[0].Followings)
	})

	t.Run("invalid token reads as anonymous", func(t *testing.T) {
		mockSvc := NewMockQuizGroupLister(ctrl)
		mockTokener := NewMockTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
		mockSvc.EXPECT().
			List(gomock.Any(), (*uuid.UUID)(nil), defaultPageSize, 0).
			Return([]models.QuizGroupDB{}, nil)

		handler := NewListQuizGroupsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/quiz-groups", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("pagination parameters", func(t *testing.T) {
		mockSvc := NewMockQuizGroupLister(ctrl)
		mockTokener := NewMockTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
		mockSvc.EXPECT().
			List(gomock.Any(), (*uuid.UUID)(nil), 25, 50).
			Return([]models.QuizGroupDB{}, nil)

		handler := NewListQuizGroupsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/quiz-groups?page=3&page_size=25", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("oversized page_size is clamped", func(t *testing.T) {
		mockSvc := NewMockQuizGroupLister(ctrl)
		mockTokener := NewMockTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
		mockSvc.EXPECT().
			List(gomock.Any(), (*uuid.UUID)(nil), maxPageSize, 0).
			Return([]models.QuizGroupDB{}, nil)

		handler := NewListQuizGroupsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/quiz-groups?page_size=99999", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc := NewMockQuizGroupLister(ctrl)
		mockTokener := NewMockTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
		mockSvc.EXPECT().
			List(gomock.Any(), (*uuid.UUID)(nil), defaultPageSize, 0).
			Return(nil, errors.New("database failure"))

		handler := NewListQuizGroupsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/quiz-groups", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
