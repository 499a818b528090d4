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

// QuizGroupUpdater defines the interface that the service must implement.
type QuizGroupUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, quizGroupID uuid.UUID, name, description string, scope bool) (*models.QuizGroupDB, error)
}

// UpdateQuizGroupRequest represents the JSON body for group updates
// swagger:model UpdateQuizGroupRequest
type UpdateQuizGroupRequest struct {
	// Group name, unique per owner
	// required: true
	// default: algebra
	QuizGroupName string `json:"quiz_group_name"`

	// Free-form description
	QuizGroupDescription string `json:"quiz_group_description"`

	// true = public, false = private
	Scope bool `json:"scope"`
}

// UpdateQuizGroupErrorResponse represents an error response for group updates
// swagger:model UpdateQuizGroupErrorResponse
type UpdateQuizGroupErrorResponse struct {
	// Error message
	// default: Quiz group not found
	Error string `json:"error"`
}

// NewUpdateQuizGroupHandler returns an HTTP handler updating a quiz group.
// @Summary Update a quiz group
// @Description Rewrites name, description and scope of a group owned by the caller. A visible group owned by someone else is forbidden; an invisible one reads as missing.
// @Tags quiz-groups
// @Accept json
// @Produce json
// @Param uuid path string true "Quiz group UUID"
// @Param updateQuizGroupRequest body handlers.UpdateQuizGroupRequest true "Quiz group attributes"
// @Success 200 {object} handlers.QuizGroupResponse "Updated quiz group"
// @Failure 400 {object} handlers.UpdateQuizGroupErrorResponse "Invalid attributes or name already taken"
// @Failure 401 {object} handlers.UpdateQuizGroupErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateQuizGroupErrorResponse "Quiz group owned by another user"
// @Failure 404 {object} handlers.UpdateQuizGroupErrorResponse "Quiz group not found"
// @Failure 500 {object} handlers.UpdateQuizGroupErrorResponse "Internal server error"
// @Router /quiz-groups/{uuid} [put]
// @Security BearerAuth
func NewUpdateQuizGroupHandler(svc QuizGroupUpdater, tokener Tokener) http.HandlerFunc {
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

		var req UpdateQuizGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		group, err := svc.Update(r.Context(), userID, quizGroupID, req.QuizGroupName, req.QuizGroupDescription, req.Scope)
		if err != nil {
			writeQuizGroupMutationError(w, quizGroupID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toQuizGroupResponse(group))
	}
}

// writeQuizGroupMutationError maps service errors of group mutations onto
// HTTP statuses.
func writeQuizGroupMutationError(w http.ResponseWriter, quizGroupID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrQuizGroupInvalid):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
			Error: "Invalid quiz group attributes",
		})
	case errors.Is(err, services.ErrQuizGroupNameTaken):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
			Error: "Quiz group name already taken",
		})
	case errors.Is(err, services.ErrQuizGroupNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
			Error: "Quiz group not found",
		})
	case errors.Is(err, services.ErrQuizGroupForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
			Error: "Quiz group owned by another user",
		})
	default:
		logger.Log.Errorw("quiz group mutation failed", "quizGroupID", quizGroupID, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UpdateQuizGroupErrorResponse{
			Error: "Internal server error",
		})
	}
}
