package critiques

import (
	"context"
	"sort"
	"sync"
	"time"

	"critique-backend/internal/critiques/engine"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Critique // critiqueId -> critique
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Critique),
	}
}

// Create stores a new critique.
func (r *MemoryRepo) Create(ctx context.Context, critique Critique) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[critique.ID] = critique
	return nil
}

// GetByID returns a critique by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, critiqueID string) (Critique, error) {
	if err := ctx.Err(); err != nil {
		return Critique{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	critique, ok := r.data[critiqueID]
	if !ok {
		return Critique{}, ErrNotFound
	}
	return critique, nil
}

// MarkProcessing transitions a critique to processing.
func (r *MemoryRepo) MarkProcessing(ctx context.Context, critiqueID string, startedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	critique, ok := r.data[critiqueID]
	if !ok {
		return ErrNotFound
	}
	critique.Status = StatusProcessing
	critique.StartedAt = &startedAt
	r.data[critiqueID] = critique
	return nil
}

// MarkCompleted stores the result and transitions a critique to completed.
func (r *MemoryRepo) MarkCompleted(ctx context.Context, critiqueID string, seed int, result *engine.Result, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	critique, ok := r.data[critiqueID]
	if !ok {
		return ErrNotFound
	}
	critique.Status = StatusCompleted
	critique.Seed = seed
	critique.Result = result
	critique.CompletedAt = &completedAt
	critique.ErrorCode = ""
	critique.ErrorMessage = ""
	r.data[critiqueID] = critique
	return nil
}

// MarkFailed records an error and transitions a critique to failed.
func (r *MemoryRepo) MarkFailed(ctx context.Context, critiqueID, errorCode, errorMessage string, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	critique, ok := r.data[critiqueID]
	if !ok {
		return ErrNotFound
	}
	critique.Status = StatusFailed
	critique.ErrorCode = errorCode
	critique.ErrorMessage = errorMessage
	critique.CompletedAt = &completedAt
	r.data[critiqueID] = critique
	return nil
}

// ListByUser returns critiques for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Critique, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var out []Critique
	for _, critique := range r.data {
		if critique.UserID == userID {
			out = append(out, critique)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Critique{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// ClaimGuest reassigns critiques owned by a guest user to an authenticated user.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	claimed := 0
	for id, critique := range r.data {
		if critique.UserID == guestUserID {
			critique.UserID = authedUserID
			r.data[id] = critique
			claimed++
		}
	}
	return claimed, nil
}

var _ Repo = (*MemoryRepo)(nil)
