package model

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a gallery photo with an optional caption.
type Photo struct {
	ID        uuid.UUID `json:"id" binding:"-"`
	Title     string    `json:"title" binding:"required,max=255"`
	ImageURL  string    `json:"image_url" binding:"required,url"`
	Caption   *string   `json:"caption" binding:"omitempty"`
	CreatedAt time.Time `json:"created_at" binding:"-"`
	UpdatedAt time.Time `json:"updated_at" binding:"-"`
}
