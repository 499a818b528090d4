package models

import (
	"time"

	"github.com/google/uuid"
)

// FollowerDB represents a "user follows quiz group" row in the database.
// (user_id, quiz_group_id) is unique: a user follows a group at most once.
type FollowerDB struct {
	FollowerID  uuid.UUID `json:"uuid" db:"follower_id"`         // Unique relation identifier
	UserID      uuid.UUID `json:"user" db:"user_id"`             // Identifier of the following user
	QuizGroupID uuid.UUID `json:"quiz_group" db:"quiz_group_id"` // Identifier of the followed group
	CreatedAt   time.Time `json:"created_at" db:"created_at"`    // Timestamp when the follow was created
}

// Follow event actions published to Kafka
const (
	FollowActionFollow   = "follow"
	FollowActionUnfollow = "unfollow"
)

// FollowEvent is the message published after a committed follow or unfollow.
type FollowEvent struct {
	EventID     string `json:"event_id"`      // Unique event identifier
	UserID      string `json:"user_id"`       // Acting user
	QuizGroupID string `json:"quiz_group_id"` // Affected group
	Action      string `json:"action"`        // "follow" or "unfollow"
	Followings  int64  `json:"followings"`    // Counter value after the operation
	Timestamp   int64  `json:"timestamp"`     // Unix time of the event
}
