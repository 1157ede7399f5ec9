package sessions

import "context"

// Repo defines persistence operations for sessions.
type Repo interface {
	// Put upserts the user's session and returns it with the new version.
	Put(ctx context.Context, session Session) (Session, error)
	Get(ctx context.Context, userID string) (Session, error)
	Delete(ctx context.Context, userID string) error
}
