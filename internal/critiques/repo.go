package critiques

import (
	"context"
	"time"

	"critique-backend/internal/critiques/engine"
)

// Repo defines persistence operations for critiques.
type Repo interface {
	Create(ctx context.Context, critique Critique) error
	GetByID(ctx context.Context, critiqueID string) (Critique, error)
	MarkProcessing(ctx context.Context, critiqueID string, startedAt time.Time) error
	MarkCompleted(ctx context.Context, critiqueID string, seed int, result *engine.Result, completedAt time.Time) error
	MarkFailed(ctx context.Context, critiqueID, errorCode, errorMessage string, completedAt time.Time) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Critique, error)
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}
