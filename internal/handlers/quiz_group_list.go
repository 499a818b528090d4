package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
)

// QuizGroupLister defines the interface that the service must implement.
type QuizGroupLister interface {
	List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.QuizGroupDB, error)
}

// QuizGroupResponse represents a quiz group in API responses
// swagger:model QuizGroupResponse
type QuizGroupResponse struct {
	// Group identifier
	UUID uuid.UUID `json:"uuid"`

	// Owner identifier
	User uuid.UUID `json:"user"`

	// Group name, unique per owner
	// default: algebra
	QuizGroupName string `json:"quiz_group_name"`

	// Free-form description
	QuizGroupDescription string `json:"quiz_group_description"`

	// true = public, false = private
	Scope bool `json:"scope"`

	// Denormalized follower count
	Followings int64 `json:"followings"`
}

// QuizGroupListErrorResponse represents an error response for group listing
// swagger:model QuizGroupListErrorResponse
type QuizGroupListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func toQuizGroupResponse(group *models.QuizGroupDB) QuizGroupResponse {
	return QuizGroupResponse{
		UUID:                 group.QuizGroupID,
		User:                 group.UserID,
		QuizGroupName:        group.Name,
		QuizGroupDescription: group.Description,
		Scope:                group.Scope,
		Followings:           group.Followings,
	}
}

// NewListQuizGroupsHandler returns an HTTP handler listing visible quiz groups.
// @Summary List quiz groups
// @Description Returns the groups visible to the caller: all public groups plus the caller's own, ordered by name. Anonymous callers see public groups only.
// @Tags quiz-groups
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (default 10, max 1000)"
// @Success 200 {array} handlers.QuizGroupResponse "Visible quiz groups"
// @Failure 500 {object} handlers.QuizGroupListErrorResponse "Internal server error"
// @Router /quiz-groups [get]
func NewListQuizGroupsHandler(svc QuizGroupLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := principalFromRequest(tokener, r)
		limit, offset := parsePagination(r)

		groups, err := svc.List(r.Context(), userID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list quiz groups", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(QuizGroupListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]QuizGroupResponse, 0, len(groups))
		for i := range groups {
			resp = append(resp, toQuizGroupResponse(&groups[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
