package sessions

import (
	"time"

	"critique-backend/internal/critiques/engine"
	"critique-backend/internal/wireframes"
)

// Session is a per-user snapshot of the review workspace. Saving bumps the
// version so clients can detect concurrent edits.
type Session struct {
	UserID      string                 `json:"-"`
	Version     int64                  `json:"version"`
	Description string                 `json:"description"`
	Persona     string                 `json:"persona"`
	Image       *wireframes.ImageInfo  `json:"image,omitempty"`
	Feedback    []engine.FeedbackItem  `json:"feedback,omitempty"`
	Notes       map[string]string      `json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
