package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
)

// QuizLister defines the interface that the service must implement.
type QuizLister interface {
	List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizDB, error)
}

// QuizResponse represents a quiz in API responses
// swagger:model QuizResponse
type QuizResponse struct {
	// Quiz identifier
	UUID uuid.UUID `json:"uuid"`

	// Parent group identifier
	QuizGroup uuid.UUID `json:"quiz_group"`

	// Quiz title
	// default: Linear equations
	QuizTitle string `json:"quiz_title"`

	// Quiz content
	QuizContent string `json:"quiz_content"`
}

// QuizListErrorResponse represents an error response for quiz listing
// swagger:model QuizListErrorResponse
type QuizListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func toQuizResponse(quiz *models.QuizDB) QuizResponse {
	return QuizResponse{
		UUID:        quiz.QuizID,
		QuizGroup:   quiz.QuizGroupID,
		QuizTitle:   quiz.Title,
		QuizContent: quiz.Content,
	}
}

// NewListQuizzesHandler returns an HTTP handler listing visible quizzes.
// @Summary List quizzes
// @Description Returns the quizzes whose parent group is visible to the caller, ordered by title.
// @Tags quizzes
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (default 10, max 1000)"
// @Success 200 {array} handlers.QuizResponse "Visible quizzes"
// @Failure 500 {object} handlers.QuizListErrorResponse "Internal server error"
// @Router /quizzes [get]
func NewListQuizzesHandler(svc QuizLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := principalFromRequest(tokener, r)
		limit, offset := parsePagination(r)

		quizzes, err := svc.List(r.Context(), userID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list quizzes", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(QuizListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]QuizResponse, 0, len(quizzes))
		for i := range quizzes {
			resp = append(resp, toQuizResponse(&quizzes[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
