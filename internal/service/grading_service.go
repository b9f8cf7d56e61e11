package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// Grading errors.
var (
	// ErrNoQuestions is returned when a quiz has no retrievable questions.
	// A quiz that exists but holds zero questions is indistinguishable from
	// an unknown quiz id; both grade as "not found".
	ErrNoQuestions = errors.New("quiz has no questions")
	// ErrAnswerCountMismatch is returned when the submission length does not
	// equal the quiz's question count. Partial submissions are not accepted.
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)

// QuestionSource loads the questions of a quiz in their stored order.
type QuestionSource interface {
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error)
}

// SubmissionRecorder accepts a graded submission for best-effort persistence.
type SubmissionRecorder interface {
	Record(ctx context.Context, sub *model.Submission) error
}

// GradingService scores quiz submissions against stored answer keys.
type GradingService struct {
	questions QuestionSource
	audit     SubmissionRecorder
	log       zerolog.Logger
}

// NewGradingService creates a new GradingService.
func NewGradingService(questions QuestionSource, audit SubmissionRecorder, log zerolog.Logger) *GradingService {
	return &GradingService{
		questions: questions,
		audit:     audit,
		log:       log.With().Str("component", "grading_service").Logger(),
	}
}

// Submit grades answers against the quiz's questions and records the attempt.
// Answers correlate positionally with the questions in seq order. The audit
// record is fire-and-forget: once the grade is computed, a failure to record
// it is logged and swallowed.
func (s *GradingService) Submit(ctx context.Context, quizID uuid.UUID, answers []int) (*model.GradeResult, error) {
	questions, err := s.questions.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result, err := scoreAnswers(questions, answers)
	if err != nil {
		return nil, err
	}

	sub := &model.Submission{
		QuizID:  quizID,
		Answers: answers,
		Score:   result.Score,
		Correct: result.Correct,
		Total:   result.Total,
	}
	if err := s.audit.Record(ctx, sub); err != nil {
		s.log.Warn().Err(err).
			Str("quiz_id", quizID.String()).
			Msg("Submission audit record dropped")
	}

	return result, nil
}

// scoreAnswers compares answers[i] against questions[i].CorrectIndex and
// builds the per-question breakdown. The score is a percentage rounded to
// two decimals with round-half-to-even.
func scoreAnswers(questions []model.Question, answers []int) (*model.GradeResult, error) {
	if len(answers) != len(questions) {
		return nil, ErrAnswerCountMismatch
	}

	total := len(questions)
	correct := 0
	results := make([]model.AnswerReview, 0, total)

	for i, q := range questions {
		isCorrect := answers[i] == q.CorrectIndex
		if isCorrect {
			correct++
		}
		results = append(results, model.AnswerReview{
			Question:      q.Text,
			YourAnswer:    answers[i],
			CorrectAnswer: q.CorrectIndex,
			IsCorrect:     isCorrect,
			Options:       q.Options,
		})
	}

	return &model.GradeResult{
		Score:   roundScore(float64(correct) / float64(total) * 100),
		Correct: correct,
		Total:   total,
		Results: results,
	}, nil
}

func roundScore(pct float64) float64 {
	return math.RoundToEven(pct*100) / 100
}
