package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Session // userId -> session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Session),
	}
}

// Put upserts the user's session, bumping the version.
func (r *MemoryRepo) Put(ctx context.Context, session Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	now := time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[session.UserID]
	if ok {
		session.Version = existing.Version + 1
		session.CreatedAt = existing.CreatedAt
	} else {
		session.Version = 1
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	r.data[session.UserID] = session
	return session, nil
}

// Get returns the user's session.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.data[userID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// Delete removes the user's session. Deleting an absent session is a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
