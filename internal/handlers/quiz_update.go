package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
	"github.com/quisapi/quisapi/internal/services"
)

// QuizUpdater defines the interface that the service must implement.
type QuizUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, quizID uuid.UUID, title, content string) (*models.QuizDB, error)
}

// UpdateQuizRequest represents the JSON body for quiz updates
// swagger:model UpdateQuizRequest
type UpdateQuizRequest struct {
	// Quiz title
	// required: true
	// default: Linear equations
	QuizTitle string `json:"quiz_title"`

	// Quiz content
	// required: true
	QuizContent string `json:"quiz_content"`
}

// UpdateQuizErrorResponse represents an error response for quiz mutations
// swagger:model UpdateQuizErrorResponse
type UpdateQuizErrorResponse struct {
	// Error message
	// default: Quiz not found
	Error string `json:"error"`
}

// NewUpdateQuizHandler returns an HTTP handler updating a quiz.
// @Summary Update a quiz
// @Description Rewrites title and content of a quiz whose parent group is owned by the caller.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param uuid path string true "Quiz UUID"
// @Param updateQuizRequest body handlers.UpdateQuizRequest true "Quiz attributes"
// @Success 200 {object} handlers.QuizResponse "Updated quiz"
// @Failure 400 {object} handlers.UpdateQuizErrorResponse "Invalid attributes"
// @Failure 401 {object} handlers.UpdateQuizErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateQuizErrorResponse "Quiz owned by another user"
// @Failure 404 {object} handlers.UpdateQuizErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.UpdateQuizErrorResponse "Internal server error"
// @Router /quizzes/{uuid} [put]
// @Security BearerAuth
func NewUpdateQuizHandler(svc QuizUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		quizID, err := pathUUID(r, "uuid")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
				Error: "Quiz not found",
			})
			return
		}

		var req UpdateQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		quiz, err := svc.Update(r.Context(), userID, quizID, req.QuizTitle, req.QuizContent)
		if err != nil {
			writeQuizMutationError(w, quizID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toQuizResponse(quiz))
	}
}

// writeQuizMutationError maps service errors of quiz mutations onto HTTP
// statuses.
func writeQuizMutationError(w http.ResponseWriter, quizID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrQuizInvalid):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
			Error: "Invalid quiz attributes",
		})
	case errors.Is(err, services.ErrQuizNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
			Error: "Quiz not found",
		})
	case errors.Is(err, services.ErrQuizForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
			Error: "Quiz owned by another user",
		})
	default:
		logger.Log.Errorw("quiz mutation failed", "quizID", quizID, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
			Error: "Internal server error",
		})
	}
}
