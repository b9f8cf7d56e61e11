package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// Create inserts a new question and returns its generated id. The seq column
// is assigned by the store and fixes the question's position within its quiz.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) (uuid.UUID, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO questions (quiz_id, text, options, correct_index)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		q.QuizID, q.Text, q.Options, q.CorrectIndex,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	return q.ID, err
}

// ListByQuiz retrieves all questions for a quiz in seq order. Grading
// correlates answers positionally, so this order is a contract.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, quiz_id, text, options, correct_index, created_at, updated_at
		 FROM questions WHERE quiz_id = $1
		 ORDER BY seq ASC`, quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Text, &q.Options, &q.CorrectIndex, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Replace overwrites the whole row at id. The seq column keeps its original
// value so an edited question does not move. Returns false when no row matched.
func (r *QuestionRepository) Replace(ctx context.Context, id uuid.UUID, q *model.Question) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE questions
		 SET quiz_id = $1, text = $2, options = $3, correct_index = $4, updated_at = NOW()
		 WHERE id = $5`,
		q.QuizID, q.Text, q.Options, q.CorrectIndex, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
