package sessions

import (
	"context"
	"errors"

	"critique-backend/internal/critiques/engine"
)

// Service contains business logic for review sessions.
type Service struct {
	Repo Repo
}

// Save validates and upserts the user's session snapshot.
// Unknown personas fall back to the General Designer profile.
func (s *Service) Save(ctx context.Context, session Session) (Session, error) {
	if session.UserID == "" {
		return Session{}, errors.New("user id required")
	}
	if session.Persona != "" && !engine.KnownPersona(session.Persona) {
		session.Persona = engine.PersonaGeneralDesigner
	}
	// Drop notes that do not refer to a feedback item in the snapshot.
	// Pruning works on a copy so the caller's map is untouched.
	if len(session.Notes) > 0 && len(session.Feedback) > 0 {
		valid := make(map[string]bool, len(session.Feedback))
		for _, item := range session.Feedback {
			valid[item.ID] = true
		}
		kept := make(map[string]string, len(session.Notes))
		for id, note := range session.Notes {
			if valid[id] {
				kept[id] = note
			}
		}
		session.Notes = kept
	}
	return s.Repo.Put(ctx, session)
}

// Get returns the user's session snapshot.
func (s *Service) Get(ctx context.Context, userID string) (Session, error) {
	if userID == "" {
		return Session{}, errors.New("user id required")
	}
	return s.Repo.Get(ctx, userID)
}

// Clear deletes the user's session snapshot.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user id required")
	}
	return s.Repo.Delete(ctx, userID)
}
