package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// QuizRepository handles quiz data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Insert stores a new quiz and returns its generated id.
func (r *QuizRepository) Insert(ctx context.Context, q *model.Quiz) (uuid.UUID, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (title, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		q.Title, q.Description,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	return q.ID, err
}

// List retrieves quizzes in creation order, capped at limit.
func (r *QuizRepository) List(ctx context.Context, limit int) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, created_at, updated_at
		 FROM quizzes ORDER BY created_at ASC, id ASC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Replace overwrites the whole row at id. Returns false when no row matched.
func (r *QuizRepository) Replace(ctx context.Context, id uuid.UUID, q *model.Quiz) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes
		 SET title = $1, description = $2, updated_at = NOW()
		 WHERE id = $3`,
		q.Title, q.Description, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
