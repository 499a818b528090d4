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

// Follower defines the interface that the service must implement.
type Follower interface {
	Follow(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error)
}

// FollowResponse represents a successful follow or unfollow response
// swagger:model FollowResponse
type FollowResponse struct {
	// Follower count after the operation
	// default: 1
	Followings int64 `json:"followings"`
}

// FollowErrorResponse represents an error response for follow operations
// swagger:model FollowErrorResponse
type FollowErrorResponse struct {
	// Error message
	// default: Already following this quiz group
	Error string `json:"error"`
}

// NewFollowHandler returns an HTTP handler subscribing the caller to a group.
// @Summary Follow a quiz group
// @Description Adds the caller to the group's followers and returns the new follower count. Owners cannot follow their own groups.
// @Tags followers
// @Produce json
// @Param uuid path string true "Quiz group UUID"
// @Success 200 {object} handlers.FollowResponse "New follower count"
// @Failure 400 {object} handlers.FollowErrorResponse "Cannot follow own quiz group"
// @Failure 401 {object} handlers.FollowErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FollowErrorResponse "Quiz group not found"
// @Failure 409 {object} handlers.FollowErrorResponse "Already following this quiz group"
// @Failure 500 {object} handlers.FollowErrorResponse "Internal server error"
// @Router /quiz-groups/{uuid}/follow [put]
// @Security BearerAuth
func NewFollowHandler(svc Follower, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FollowErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		quizGroupID, err := pathUUID(r, "uuid")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FollowErrorResponse{
				Error: "Quiz group not found",
			})
			return
		}

		followings, err := svc.Follow(r.Context(), userID, quizGroupID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfFollow):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Cannot follow own quiz group",
				})
			case errors.Is(err, services.ErrQuizGroupNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Quiz group not found",
				})
			case errors.Is(err, services.ErrAlreadyFollowing):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Already following this quiz group",
				})
			default:
				logger.Log.Errorw("failed to follow quiz group", "quizGroupID", quizGroupID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FollowResponse{
			Followings: followings,
		})
	}
}
