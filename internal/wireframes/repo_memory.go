package wireframes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Wireframe // userId -> wireframes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Wireframe),
	}
}

// Create appends a wireframe for a user.
func (r *MemoryRepo) Create(ctx context.Context, wf Wireframe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[wf.UserID] = append(r.data[wf.UserID], wf)
	return nil
}

// GetCurrentByUser returns the latest wireframe for a user.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userID string) (Wireframe, error) {
	if err := ctx.Err(); err != nil {
		return Wireframe{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	wfs, ok := r.data[userID]
	if !ok || len(wfs) == 0 {
		return Wireframe{}, ErrNotFound
	}
	return wfs[len(wfs)-1], nil
}

// GetByID returns a wireframe by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, wireframeID string) (Wireframe, error) {
	if err := ctx.Err(); err != nil {
		return Wireframe{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	wfs := r.data[userID]
	for i := range wfs {
		if wfs[i].ID == wireframeID {
			return wfs[i], nil
		}
	}
	return Wireframe{}, ErrNotFound
}

// ListByUser returns wireframes for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Wireframe, error) {
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
	userWfs := r.data[userID]
	r.mu.RUnlock()

	if len(userWfs) == 0 || offset >= len(userWfs) {
		return []Wireframe{}, nil
	}

	wfs := make([]Wireframe, len(userWfs))
	copy(wfs, userWfs)
	sort.Slice(wfs, func(i, j int) bool {
		return wfs[i].CreatedAt.After(wfs[j].CreatedAt)
	})

	end := len(wfs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return wfs[offset:end], nil
}

// ClaimGuest reassigns wireframes owned by a guest user to an authenticated user.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	wfs := r.data[guestUserID]
	if len(wfs) == 0 {
		return 0, nil
	}
	for i := range wfs {
		wfs[i].UserID = authedUserID
	}
	r.data[authedUserID] = append(r.data[authedUserID], wfs...)
	delete(r.data, guestUserID)
	return len(wfs), nil
}

var _ Repo = (*MemoryRepo)(nil)
