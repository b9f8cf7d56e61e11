package model

import (
	"time"

	"github.com/google/uuid"
)

// Material is a study material (teks materi pembelajaran).
// The struct doubles as the create/replace payload; ID and timestamps are
// assigned by the store and ignored on input.
type Material struct {
	ID           uuid.UUID `json:"id" binding:"-"`
	Title        string    `json:"title" binding:"required,max=255"`
	Content      string    `json:"content" binding:"required"`
	Category     *string   `json:"category" binding:"omitempty,max=100"`
	ThumbnailURL *string   `json:"thumbnail_url" binding:"omitempty,url"`
	CreatedAt    time.Time `json:"created_at" binding:"-"`
	UpdatedAt    time.Time `json:"updated_at" binding:"-"`
}
