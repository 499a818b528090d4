package models

import (
	"time"

	"github.com/google/uuid"
)

// Field length limits for quizzes
const (
	MaxQuizTitleLen   = 128
	MaxQuizContentLen = 1024
)

// QuizDB represents a quiz row in the database
type QuizDB struct {
	QuizID      uuid.UUID `json:"uuid" db:"quiz_id"`              // Unique quiz identifier
	QuizGroupID uuid.UUID `json:"quiz_group" db:"quiz_group_id"`  // Identifier of the parent group
	Title       string    `json:"quiz_title" db:"quiz_title"`     // Quiz title
	Content     string    `json:"quiz_content" db:"quiz_content"` // Quiz body text
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Timestamp when the quiz was created
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Timestamp of the last quiz update
}
