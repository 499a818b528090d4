package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// QuizDeleter defines the interface that the service must implement.
type QuizDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, quizID uuid.UUID) error
}

// DeleteQuizResponse represents a successful deletion response
// swagger:model DeleteQuizResponse
type DeleteQuizResponse struct {
	// Success message
	// default: Quiz deleted
	Message string `json:"message"`
}

// NewDeleteQuizHandler returns an HTTP handler deleting a quiz.
// @Summary Delete a quiz
// @Description Removes a quiz whose parent group is owned by the caller.
// @Tags quizzes
// @Produce json
// @Param uuid path string true "Quiz UUID"
// @Success 200 {object} handlers.DeleteQuizResponse "Quiz deleted"
// @Failure 401 {object} handlers.UpdateQuizErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateQuizErrorResponse "Quiz owned by another user"
// @Failure 404 {object} handlers.UpdateQuizErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.UpdateQuizErrorResponse "Internal server error"
// @Router /quizzes/{uuid} [delete]
// @Security BearerAuth
func NewDeleteQuizHandler(svc QuizDeleter, tokener Tokener) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, quizID); err != nil {
			writeQuizMutationError(w, quizID, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteQuizResponse{
			Message: "Quiz deleted",
		})
	}
}
