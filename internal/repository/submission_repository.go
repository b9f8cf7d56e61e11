package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// SubmissionRepository persists graded submission records. The table is
// append-only; nothing ever reads it back through the API.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

const insertSubmissionSQL = `
	INSERT INTO submissions (quiz_id, answers, score, correct, total)
	VALUES ($1, $2, $3, $4, $5)`

// Insert stores a single submission record.
func (r *SubmissionRepository) Insert(ctx context.Context, s *model.Submission) error {
	_, err := r.pool.Exec(ctx, insertSubmissionSQL,
		s.QuizID, answersToInt32(s.Answers), s.Score, s.Correct, s.Total)
	return err
}

// InsertBatch stores many submission records in one round trip.
func (r *SubmissionRepository) InsertBatch(ctx context.Context, subs []*model.Submission) error {
	batch := &pgx.Batch{}
	for _, s := range subs {
		batch.Queue(insertSubmissionSQL,
			s.QuizID, answersToInt32(s.Answers), s.Score, s.Correct, s.Total)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range subs {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// answersToInt32 maps answers onto the integer[] column type.
func answersToInt32(answers []int) []int32 {
	out := make([]int32, len(answers))
	for i, a := range answers {
		out[i] = int32(a)
	}
	return out
}
