package models

import (
	"time"

	"github.com/google/uuid"
)

// Field length limits for quiz groups
const (
	MaxQuizGroupNameLen = 64
)

// QuizGroupDB represents a quiz group row in the database
type QuizGroupDB struct {
	QuizGroupID uuid.UUID `json:"uuid" db:"quiz_group_id"`                            // Unique group identifier
	UserID      uuid.UUID `json:"user" db:"user_id"`                                  // Identifier of the owning user
	Name        string    `json:"quiz_group_name" db:"quiz_group_name"`               // Group name, unique per owner
	Description string    `json:"quiz_group_description" db:"quiz_group_description"` // Free-form description
	Scope       bool      `json:"scope" db:"scope"`                                   // true = public, false = private
	Followings  int64     `json:"followings" db:"followings"`                         // Denormalized follower count
	CreatedAt   time.Time `json:"created_at" db:"created_at"`                         // Timestamp when the group was created
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`                         // Timestamp of the last group update
}
