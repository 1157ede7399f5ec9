package critiques

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"critique-backend/internal/critiques/engine"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new critique.
func (r *PGRepo) Create(ctx context.Context, critique Critique) error {
	const query = `
INSERT INTO critiques (
	id, wireframe_id, user_id, status, description, persona, seed, critique_version, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var wireframeID sql.NullString
	if critique.WireframeID != "" {
		wireframeID = sql.NullString{String: critique.WireframeID, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		critique.ID,
		wireframeID,
		critique.UserID,
		critique.Status,
		critique.Description,
		critique.Persona,
		critique.Seed,
		critique.Version,
		critique.CreatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, wireframe_id, user_id, status, description, persona, seed, critique_version,
       result, error_code, error_message, started_at, completed_at, created_at
FROM critiques`

// GetByID returns a critique by ID.
func (r *PGRepo) GetByID(ctx context.Context, critiqueID string) (Critique, error) {
	query := selectColumns + `
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, critiqueID)
	return scanCritique(row)
}

// MarkProcessing transitions a critique to processing.
func (r *PGRepo) MarkProcessing(ctx context.Context, critiqueID string, startedAt time.Time) error {
	const query = `
UPDATE critiques
SET status = $1, started_at = $2, updated_at = now()
WHERE id = $3 AND deleted_at IS NULL`
	return r.exec(ctx, query, StatusProcessing, startedAt, critiqueID)
}

// MarkCompleted stores the result and transitions a critique to completed.
func (r *PGRepo) MarkCompleted(ctx context.Context, critiqueID string, seed int, result *engine.Result, completedAt time.Time) error {
	payload, err := marshalJSONB(result)
	if err != nil {
		return err
	}
	const query = `
UPDATE critiques
SET status = $1, seed = $2, result = $3, completed_at = $4,
    error_code = NULL, error_message = NULL, updated_at = now()
WHERE id = $5 AND deleted_at IS NULL`
	return r.exec(ctx, query, StatusCompleted, seed, payload, completedAt, critiqueID)
}

// MarkFailed records an error and transitions a critique to failed.
func (r *PGRepo) MarkFailed(ctx context.Context, critiqueID, errorCode, errorMessage string, completedAt time.Time) error {
	const query = `
UPDATE critiques
SET status = $1, error_code = $2, error_message = $3, completed_at = $4, updated_at = now()
WHERE id = $5 AND deleted_at IS NULL`
	return r.exec(ctx, query, StatusFailed, errorCode, errorMessage, completedAt, critiqueID)
}

// ListByUser lists critiques ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Critique, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := selectColumns + `
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Critique
	for rows.Next() {
		critique, err := scanCritique(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, critique)
	}
	return out, rows.Err()
}

// ClaimGuest reassigns critiques owned by a guest user to an authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	const query = `
UPDATE critiques
SET user_id = $1, updated_at = now()
WHERE user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	updated, _ := res.RowsAffected()
	return int(updated), nil
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCritique(row rowScanner) (Critique, error) {
	var critique Critique
	var wireframeID sql.NullString
	var version sql.NullString
	var resultRaw sql.NullString
	var errorCode sql.NullString
	var errorMessage sql.NullString
	var startedAt sql.NullTime
	var completedAt sql.NullTime
	err := row.Scan(
		&critique.ID,
		&wireframeID,
		&critique.UserID,
		&critique.Status,
		&critique.Description,
		&critique.Persona,
		&critique.Seed,
		&version,
		&resultRaw,
		&errorCode,
		&errorMessage,
		&startedAt,
		&completedAt,
		&critique.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Critique{}, ErrNotFound
		}
		return Critique{}, err
	}
	if wireframeID.Valid {
		critique.WireframeID = wireframeID.String
	}
	if version.Valid {
		critique.Version = version.String
	}
	if resultRaw.Valid && resultRaw.String != "" {
		var result engine.Result
		if err := json.Unmarshal([]byte(resultRaw.String), &result); err != nil {
			return Critique{}, err
		}
		critique.Result = &result
	}
	if errorCode.Valid {
		critique.ErrorCode = errorCode.String
	}
	if errorMessage.Valid {
		critique.ErrorMessage = errorMessage.String
	}
	if startedAt.Valid {
		critique.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		critique.CompletedAt = &completedAt.Time
	}
	return critique, nil
}

func marshalJSONB(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

var _ Repo = (*PGRepo)(nil)
