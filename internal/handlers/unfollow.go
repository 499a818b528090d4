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

// Unfollower defines the interface that the service must implement.
type Unfollower interface {
	Unfollow(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error)
}

// NewUnfollowHandler returns an HTTP handler unsubscribing the caller from a group.
// @Summary Unfollow a quiz group
// @Description Removes the caller from the group's followers and returns the new follower count.
// @Tags followers
// @Produce json
// @Param uuid path string true "Quiz group UUID"
// @Success 200 {object} handlers.FollowResponse "New follower count"
// @Failure 401 {object} handlers.FollowErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FollowErrorResponse "Not following this quiz group"
// @Failure 500 {object} handlers.FollowErrorResponse "Internal server error"
// @Router /quiz-groups/{uuid}/unfollow [put]
// @Security BearerAuth
func NewUnfollowHandler(svc Unfollower, tokener Tokener) http.HandlerFunc {
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

		followings, err := svc.Unfollow(r.Context(), userID, quizGroupID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFollowing):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Not following this quiz group",
				})
			default:
				logger.Log.Errorw("failed to unfollow quiz group", "quizGroupID", quizGroupID, "err", err)
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
