package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/services"
)

// FollowingsReader defines the interface that the service must implement.
type FollowingsReader interface {
	Followings(ctx context.Context, userID *uuid.UUID, quizGroupID uuid.UUID) (int64, error)
}

// FollowingsResponse represents a follower count response
// swagger:model FollowingsResponse
type FollowingsResponse struct {
	// Current follower count
	// default: 1
	Followings int64 `json:"followings"`
}

// NewFollowingsHandler returns an HTTP handler reading a group's follower count.
// @Summary Get follower count
// @Description Returns the follower count of a group visible to the caller.
// @Tags followers
// @Produce json
// @Param uuid path string true "Quiz group UUID"
// @Success 200 {object} handlers.FollowingsResponse "Current follower count"
// @Failure 404 {object} handlers.FollowErrorResponse "Quiz group not found"
// @Failure 500 {object} handlers.FollowErrorResponse "Internal server error"
// @Router /quiz-groups/{uuid}/followers [get]
func NewFollowingsHandler(svc FollowingsReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizGroupID, err := pathUUID(r, "uuid")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FollowErrorResponse{
				Error: "Quiz group not found",
			})
			return
		}

		userID := principalFromRequest(tokener, r)

		followings, err := svc.Followings(r.Context(), userID, quizGroupID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizGroupNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Quiz group not found",
				})
			default:
				logger.Log.Errorw("failed to read follower count", "quizGroupID", quizGroupID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FollowingsResponse{
			Followings: followings,
		})
	}
}
