package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarigama-github/agama-backend/internal/model"
)

// MaterialRepository handles material data access.
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

// Insert stores a new material and returns its generated id.
func (r *MaterialRepository) Insert(ctx context.Context, m *model.Material) (uuid.UUID, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO materials (title, content, category, thumbnail_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		m.Title, m.Content, m.Category, m.ThumbnailURL,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return m.ID, err
}

// List retrieves materials in creation order, capped at limit.
func (r *MaterialRepository) List(ctx context.Context, limit int) ([]model.Material, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, category, thumbnail_url, created_at, updated_at
		 FROM materials ORDER BY created_at ASC, id ASC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []model.Material
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.Category, &m.ThumbnailURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// Replace overwrites the whole row at id. Returns false when no row matched.
func (r *MaterialRepository) Replace(ctx context.Context, id uuid.UUID, m *model.Material) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE materials
		 SET title = $1, content = $2, category = $3, thumbnail_url = $4, updated_at = NOW()
		 WHERE id = $5`,
		m.Title, m.Content, m.Category, m.ThumbnailURL, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
