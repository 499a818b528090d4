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

// QuizGroupCreator defines the interface that the service must implement.
type QuizGroupCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error)
}

// CreateQuizGroupRequest represents the JSON body for group creation
// swagger:model CreateQuizGroupRequest
type CreateQuizGroupRequest struct {
	// Group name, unique per owner
	// required: true
	// default: algebra
	QuizGroupName string `json:"quiz_group_name"`

	// Free-form description
	QuizGroupDescription string `json:"quiz_group_description"`

	// true = public, false = private
	// default: false
	Scope bool `json:"scope"`
}

// CreateQuizGroupErrorResponse represents an error response for group creation
// swagger:model CreateQuizGroupErrorResponse
type CreateQuizGroupErrorResponse struct {
	// Error message
	// default: Quiz group name already taken
	Error string `json:"error"`
}

// NewCreateQuizGroupHandler returns an HTTP handler creating a quiz group.
// @Summary Create a quiz group
// @Description Creates a group owned by the caller. The name must be unique among the caller's groups.
// @Tags quiz-groups
// @Accept json
// @Produce json
// @Param createQuizGroupRequest body handlers.CreateQuizGroupRequest true "Quiz group attributes"
// @Success 201 {object} handlers.QuizGroupResponse "Created quiz group"
// @Failure 400 {object} handlers.CreateQuizGroupErrorResponse "Invalid attributes or name already taken"
// @Failure 401 {object} handlers.CreateQuizGroupErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.CreateQuizGroupErrorResponse "Internal server error"
// @Router /quiz-groups [post]
// @Security BearerAuth
func NewCreateQuizGroupHandler(svc QuizGroupCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateQuizGroupErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateQuizGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateQuizGroupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		group, err := svc.Create(r.Context(), userID, req.QuizGroupName, req.QuizGroupDescription, req.Scope)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizGroupInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateQuizGroupErrorResponse{
					Error: "Invalid quiz group attributes",
				})
			case errors.Is(err, services.ErrQuizGroupNameTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateQuizGroupErrorResponse{
					Error: "Quiz group name already taken",
				})
			default:
				logger.Log.Errorw("failed to create quiz group", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateQuizGroupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toQuizGroupResponse(group))
	}
}
