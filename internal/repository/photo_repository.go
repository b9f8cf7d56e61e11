package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// PhotoRepository handles photo data access. Photos are insert-and-list only;
// there is no replace.
type PhotoRepository struct {
	pool *pgxpool.Pool
}

// NewPhotoRepository creates a new PhotoRepository.
func NewPhotoRepository(pool *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

// Insert stores a new photo and returns its generated id.
func (r *PhotoRepository) Insert(ctx context.Context, p *model.Photo) (uuid.UUID, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO photos (title, image_url, caption)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.ImageURL, p.Caption,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return p.ID, err
}

// List retrieves photos in creation order, capped at limit.
func (r *PhotoRepository) List(ctx context.Context, limit int) ([]model.Photo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, image_url, caption, created_at, updated_at
		 FROM photos ORDER BY created_at ASC, id ASC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.ImageURL, &p.Caption, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
