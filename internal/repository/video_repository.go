package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// VideoRepository handles video data access. Videos are insert-and-list only;
// there is no replace.
type VideoRepository struct {
	pool *pgxpool.Pool
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

// Insert stores a new video and returns its generated id.
func (r *VideoRepository) Insert(ctx context.Context, v *model.Video) (uuid.UUID, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO videos (title, url, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		v.Title, v.URL, v.Description,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	return v.ID, err
}

// List retrieves videos in creation order, capped at limit.
func (r *VideoRepository) List(ctx context.Context, limit int) ([]model.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, url, description, created_at, updated_at
		 FROM videos ORDER BY created_at ASC, id ASC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
