package critiques

import (
	"time"

	"critique-backend/internal/critiques/engine"
)

// Critique represents a wireframe critique job.
type Critique struct {
	ID           string         `json:"id"`
	WireframeID  string         `json:"wireframeId,omitempty"`
	UserID       string         `json:"userId"`
	Description  string         `json:"description"`
	Persona      string         `json:"persona"`
	Seed         int            `json:"seed"`
	Version      string         `json:"version"`
	Status       string         `json:"status"`
	Result       *engine.Result `json:"result,omitempty"`
	ErrorCode    string         `json:"errorCode,omitempty"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	StartedAt    *time.Time     `json:"startedAt,omitempty"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
