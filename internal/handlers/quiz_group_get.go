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

// QuizGroupGetter defines the interface that the service must implement.
type QuizGroupGetter interface {
	Get(ctx context.Context, userID *uuid.UUID, quizGroupID uuid.UUID) (*models.QuizGroupDB, error)
}

// QuizGroupGetErrorResponse represents an error response for a single group fetch
// swagger:model QuizGroupGetErrorResponse
type QuizGroupGetErrorResponse struct {
	// Error message
	// default: Quiz group not found
	Error string `json:"error"`
}

// NewGetQuizGroupHandler returns an HTTP handler fetching a single quiz group.
// @Summary Get a quiz group
// @Description Returns one group if it is public or owned by the caller. Private groups of other users read as missing.
// @Tags quiz-groups
// @Produce json
// @Param uuid path string true "Quiz group UUID"
// @Success 200 {object} handlers.QuizGroupResponse "Quiz group"
// @Failure 404 {object} handlers.QuizGroupGetErrorResponse "Quiz group not found"
// @Failure 500 {object} handlers.QuizGroupGetErrorResponse "Internal server error"
// @Router /quiz-groups/{uuid} [get]
func NewGetQuizGroupHandler(svc QuizGroupGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizGroupID, err := pathUUID(r, "uuid")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(QuizGroupGetErrorResponse{
				Error: "Quiz group not found",
			})
			return
		}

		userID := principalFromRequest(tokener, r)

		group, err := svc.Get(r.Context(), userID, quizGroupID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizGroupNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(QuizGroupGetErrorResponse{
					Error: "Quiz group not found",
				})
			default:
				logger.Log.Errorw("failed to get quiz group", "quizGroupID", quizGroupID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(QuizGroupGetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toQuizGroupResponse(group))
	}
}
