package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is a multiple-choice question belonging to exactly one quiz.
// CorrectIndex is the sole answer key. QuizID is stored as-is after a format
// check; existence of the quiz is never verified.
type Question struct {
	ID           uuid.UUID `json:"id"`
	QuizID       uuid.UUID `json:"quiz_id"`
	Text         string    `json:"text"`
	Options      []string  `json:"options"`
	CorrectIndex int       `json:"correct_index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// QuestionRequest is the payload for creating or replacing a question.
// QuizID stays a raw string here so the handler can reject a malformed id
// with INVALID_ID instead of a generic binding error.
type QuestionRequest struct {
	QuizID       string   `json:"quiz_id" binding:"required"`
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectIndex *int     `json:"correct_index" binding:"required,gte=0"`
}
