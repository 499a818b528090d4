package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// QuizGroupDeleter defines the interface that the service must implement.
type QuizGroupDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID) error
}

// DeleteQuizGroupResponse represents a successful deletion response
// swagger:model DeleteQuizGroupResponse
type DeleteQuizGroupResponse struct {
	// Success message
	// default: Quiz group deleted
	Message string `json:"message"`
}

// NewDeleteQuizGroupHandler returns an HTTP handler deleting a quiz group.
// @Summary Delete a quiz group
// @Description Removes a group owned by the caller; its quizzes and follower rows are removed with it.
// @Tags quiz-groups
// @Produce json
// @Param uuid path string true "Quiz group UUID"
// @Success 200 {object} handlers.DeleteQuizGroupResponse "Quiz group deleted"
// @Failure 401 {object} handlers.UpdateQuizGroupErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateQuizGroupErrorResponse "Quiz group owned by another user"
// @Failure 404 {object} handlers.UpdateQuizGroupErrorResponse "Quiz group not found"
// @Failure 500 {object} handlers.UpdateQuizGroupErrorResponse "Internal server error"
// @Router /quiz-groups/{uuid} [delete]
// @Security BearerAuth
func NewDeleteQuizGroupHandler(svc QuizGroupDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		quizGroupID, err := pathUUID(r, "uuid")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
				Error: "Quiz group not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), userID, quizGroupID); err != nil {
			writeQuizGroupMutationError(w, quizGroupID, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteQuizGroupResponse{
			Message: "Quiz group deleted",
		})
	}
}
