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

// QuizGetter defines the interface that the service must implement.
type QuizGetter interface {
	Get(ctx context.Context, userID *uuid.UUID, quizID uuid.UUID) (*models.QuizDB, error)
}

// QuizGetErrorResponse represents an error response for a single quiz fetch
// swagger:model QuizGetErrorResponse
type QuizGetErrorResponse struct {
	// Error message
	// default: Quiz not found
	Error string `json:"error"`
}

// NewGetQuizHandler returns an HTTP handler fetching a single quiz.
// @Summary Get a quiz
// @Description Returns one quiz if its parent group is public or owned by the caller.
// @Tags quizzes
// @Produce json
// @Param uuid path string true "Quiz UUID"
// @Success 200 {object} handlers.QuizResponse "Quiz"
// @Failure 404 {object} handlers.QuizGetErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.QuizGetErrorResponse "Internal server error"
// @Router /quizzes/{uuid} [get]
func NewGetQuizHandler(svc QuizGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID, err := pathUUID(r, "uuid")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(QuizGetErrorResponse{
				Error: "Quiz not found",
			})
			return
		}

		userID := principalFromRequest(tokener, r)

		quiz, err := svc.Get(r.Context(), userID, quizID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(QuizGetErrorResponse{
					Error: "Quiz not found",
				})
			default:
				logger.Log.Errorw("failed to get quiz", "quizID", quizID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(QuizGetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toQuizResponse(quiz))
	}
}
