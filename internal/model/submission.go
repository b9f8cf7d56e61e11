package model

import (
	"time"

	"github.com/google/uuid"
)

// Submission is the append-only audit record of a graded attempt.
// It is written best-effort and never read back by any endpoint.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	QuizID    uuid.UUID `json:"quiz_id"`
	Answers   []int     `json:"answers"`
	Score     float64   `json:"score"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitRequest is the payload for grading a quiz attempt.
// Answers are option indices, positionally aligned with the quiz's questions
// in their stored order.
type SubmitRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// AnswerReview is the per-question breakdown returned with a grade, including
// the options list so a client can render the key without a second fetch.
type AnswerReview struct {
	Question      string   `json:"question"`
	YourAnswer    int      `json:"your_answer"`
	CorrectAnswer int      `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Options       []string `json:"options"`
}

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	Score   float64        `json:"score"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Results []AnswerReview `json:"results"`
}
