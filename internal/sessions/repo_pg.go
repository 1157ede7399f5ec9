package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"critique-backend/internal/wireframes"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Put upserts the user's session, bumping the version.
func (r *PGRepo) Put(ctx context.Context, session Session) (Session, error) {
	var imagePayload, feedbackPayload, notesPayload any
	var err error
	if session.Image != nil {
		if imagePayload, err = marshalJSONB(session.Image); err != nil {
			return Session{}, err
		}
	}
	if session.Feedback != nil {
		if feedbackPayload, err = marshalJSONB(session.Feedback); err != nil {
			return Session{}, err
		}
	}
	if session.Notes != nil {
		if notesPayload, err = marshalJSONB(session.Notes); err != nil {
			return Session{}, err
		}
	}

	const query = `
INSERT INTO sessions (user_id, version, description, persona, image_metadata, feedback, notes, created_at, updated_at)
VALUES ($1, 1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
	version = sessions.version + 1,
	description = EXCLUDED.description,
	persona = EXCLUDED.persona,
	image_metadata = EXCLUDED.image_metadata,
	feedback = EXCLUDED.feedback,
	notes = EXCLUDED.notes,
	updated_at = now()
RETURNING version, created_at, updated_at`

	row := r.DB.QueryRowContext(ctx, query,
		session.UserID,
		session.Description,
		session.Persona,
		imagePayload,
		feedbackPayload,
		notesPayload,
	)
	if err := row.Scan(&session.Version, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Get returns the user's session.
func (r *PGRepo) Get(ctx context.Context, userID string) (Session, error) {
	const query = `
SELECT user_id, version, description, persona, image_metadata, feedback, notes, created_at, updated_at
FROM sessions
WHERE user_id = $1
LIMIT 1`

	var session Session
	var imageRaw, feedbackRaw, notesRaw sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&session.UserID,
		&session.Version,
		&session.Description,
		&session.Persona,
		&imageRaw,
		&feedbackRaw,
		&notesRaw,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if imageRaw.Valid && imageRaw.String != "" {
		var image wireframes.ImageInfo
		if err := json.Unmarshal([]byte(imageRaw.String), &image); err != nil {
			return Session{}, err
		}
		session.Image = &image
	}
	if feedbackRaw.Valid && feedbackRaw.String != "" {
		if err := json.Unmarshal([]byte(feedbackRaw.String), &session.Feedback); err != nil {
			return Session{}, err
		}
	}
	if notesRaw.Valid && notesRaw.String != "" {
		if err := json.Unmarshal([]byte(notesRaw.String), &session.Notes); err != nil {
			return Session{}, err
		}
	}
	return session, nil
}

// Delete removes the user's session.
func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

func marshalJSONB(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

var _ Repo = (*PGRepo)(nil)
