package wireframes

import "context"

// Repo defines persistence operations for wireframes.
type Repo interface {
	Create(ctx context.Context, wf Wireframe) error
	GetCurrentByUser(ctx context.Context, userID string) (Wireframe, error)
	GetByID(ctx context.Context, userID, wireframeID string) (Wireframe, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Wireframe, error)
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}
