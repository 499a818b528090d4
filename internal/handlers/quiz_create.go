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

// QuizCreator defines the interface that the service must implement.
type QuizCreator interface {
	Create(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID, title, content string) (*models.QuizDB, error)
}

// CreateQuizRequest represents the JSON body for quiz creation
// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	// Parent group identifier
	// required: true
	QuizGroup uuid.UUID `json:"quiz_group"`

	// Quiz title
	// required: true
	// default: Linear equations
	QuizTitle string `json:"quiz_title"`

	// Quiz content
	// required: true
	QuizContent string `json:"quiz_content"`
}

// CreateQuizErrorResponse represents an error response for quiz creation
// swagger:model CreateQuizErrorResponse
type CreateQuizErrorResponse struct {
	// Error message
	// default: Quiz group not found
	Error string `json:"error"`
}

// NewCreateQuizHandler returns an HTTP handler creating a quiz.
// @Summary Create a quiz
// @Description Adds a quiz to a group owned by the caller.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param createQuizRequest body handlers.CreateQuizRequest true "Quiz attributes"
// @Success 201 {object} handlers.QuizResponse "Created quiz"
// @Failure 400 {object} handlers.CreateQuizErrorResponse "Invalid attributes"
// @Failure 401 {object} handlers.CreateQuizErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.CreateQuizErrorResponse "Quiz group owned by another user"
// @Failure 404 {object} handlers.CreateQuizErrorResponse "Quiz group not found"
// @Failure 500 {object} handlers.CreateQuizErrorResponse "Internal server error"
// @Router /quizzes [post]
// @Security BearerAuth
func NewCreateQuizHandler(svc QuizCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateQuizErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateQuizErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		quiz, err := svc.Create(r.Context(), userID, req.QuizGroup, req.QuizTitle, req.QuizContent)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Invalid quiz attributes",
				})
			case errors.Is(err, services.ErrQuizGroupNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Quiz group not found",
				})
			case errors.Is(err, services.ErrQuizForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Quiz group owned by another user",
				})
			default:
				logger.Log.Errorw("failed to create quiz", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toQuizResponse(quiz))
	}
}
