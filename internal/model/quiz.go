package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a container for questions, referenced by Question.QuizID.
type Quiz struct {
	ID          uuid.UUID `json:"id" binding:"-"`
	Title       string    `json:"title" binding:"required,max=255"`
	Description *string   `json:"description" binding:"omitempty"`
	CreatedAt   time.Time `json:"created_at" binding:"-"`
	UpdatedAt   time.Time `json:"updated_at" binding:"-"`
}
