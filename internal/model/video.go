package model

import (
	"time"

	"github.com/google/uuid"
)

// Video is an embedded learning video (YouTube/Vimeo/MP4 URL).
type Video struct {
	ID          uuid.UUID `json:"id" binding:"-"`
	Title       string    `json:"title" binding:"required,max=255"`
	URL         string    `json:"url" binding:"required,url"`
	Description *string   `json:"description" binding:"omitempty"`
	CreatedAt   time.Time `json:"created_at" binding:"-"`
	UpdatedAt   time.Time `json:"updated_at" binding:"-"`
}
