package wireframes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new wireframe.
func (r *PGRepo) Create(ctx context.Context, wf Wireframe) error {
	const query = `
INSERT INTO wireframes (
    id,
    user_id,
    file_name,
    original_filename,
    mime_type,
    content_type,
    size_bytes,
    storage_provider,
    storage_key,
    extracted_text_key,
    extracted_at,
    image_width,
    image_height,
    aspect_ratio,
    orientation,
    is_mobile_friendly,
    has_large_dimensions,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	originalName := wf.OriginalFilename
	if originalName == "" {
		originalName = wf.FileName
	}
	contentType := wf.ContentType
	if contentType == "" {
		contentType = wf.MimeType
	}
	storageProvider := wf.StorageProvider
	if storageProvider == "" {
		storageProvider = "local"
	}

	var storageKey sql.NullString
	if wf.StorageKey != "" {
		storageKey = sql.NullString{String: wf.StorageKey, Valid: true}
	}

	var extractedKey sql.NullString
	if wf.ExtractedTextKey != "" {
		extractedKey = sql.NullString{String: wf.ExtractedTextKey, Valid: true}
	}
	var extractedAt sql.NullTime
	if wf.ExtractedAt != nil {
		extractedAt = sql.NullTime{Time: *wf.ExtractedAt, Valid: true}
	}

	var width, height sql.NullInt64
	var aspect sql.NullFloat64
	var orientation sql.NullString
	var mobileFriendly, largeDims sql.NullBool
	if wf.Image != nil {
		width = sql.NullInt64{Int64: int64(wf.Image.Width), Valid: true}
		height = sql.NullInt64{Int64: int64(wf.Image.Height), Valid: true}
		aspect = sql.NullFloat64{Float64: wf.Image.AspectRatio, Valid: true}
		orientation = sql.NullString{String: wf.Image.Orientation, Valid: true}
		mobileFriendly = sql.NullBool{Bool: wf.Image.IsMobileFriendly, Valid: true}
		largeDims = sql.NullBool{Bool: wf.Image.HasLargeDimensions, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		wf.ID,
		wf.UserID,
		wf.FileName,
		originalName,
		wf.MimeType,
		contentType,
		wf.SizeBytes,
		storageProvider,
		storageKey,
		extractedKey,
		extractedAt,
		width,
		height,
		aspect,
		orientation,
		mobileFriendly,
		largeDims,
		wf.CreatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, user_id, file_name, original_filename, mime_type, content_type, size_bytes,
       storage_provider, storage_key, extracted_text_key, extracted_at,
       image_width, image_height, aspect_ratio, orientation, is_mobile_friendly, has_large_dimensions,
       created_at
FROM wireframes`

// GetCurrentByUser returns the latest wireframe for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Wireframe, error) {
	query := selectColumns + `
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID)
	return scanWireframe(row)
}

// GetByID fetches a wireframe by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, wireframeID string) (Wireframe, error) {
	query := selectColumns + `
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, wireframeID)
	return scanWireframe(row)
}

// ListByUser lists wireframes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Wireframe, error) {
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

	var out []Wireframe
	for rows.Next() {
		wf, err := scanWireframe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, wf)
	}
	return out, rows.Err()
}

// ClaimGuest reassigns wireframes owned by a guest user to an authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	const query = `
UPDATE wireframes
SET user_id = $1
WHERE user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	updated, _ := res.RowsAffected()
	return int(updated), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWireframe(row rowScanner) (Wireframe, error) {
	var wf Wireframe
	var originalName sql.NullString
	var contentType sql.NullString
	var storageProvider sql.NullString
	var storageKey sql.NullString
	var extractedKey sql.NullString
	var extractedAt sql.NullTime
	var width, height sql.NullInt64
	var aspect sql.NullFloat64
	var orientation sql.NullString
	var mobileFriendly, largeDims sql.NullBool
	err := row.Scan(
		&wf.ID,
		&wf.UserID,
		&wf.FileName,
		&originalName,
		&wf.MimeType,
		&contentType,
		&wf.SizeBytes,
		&storageProvider,
		&storageKey,
		&extractedKey,
		&extractedAt,
		&width,
		&height,
		&aspect,
		&orientation,
		&mobileFriendly,
		&largeDims,
		&wf.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Wireframe{}, ErrNotFound
		}
		return Wireframe{}, err
	}
	if originalName.Valid {
		wf.OriginalFilename = originalName.String
	}
	if contentType.Valid {
		wf.ContentType = contentType.String
	}
	if storageProvider.Valid {
		wf.StorageProvider = storageProvider.String
	}
	if storageKey.Valid {
		wf.StorageKey = storageKey.String
	}
	if extractedKey.Valid {
		wf.ExtractedTextKey = extractedKey.String
	}
	if extractedAt.Valid {
		wf.ExtractedAt = &extractedAt.Time
	}
	if width.Valid && height.Valid {
		wf.Image = &ImageInfo{
			Width:              int(width.Int64),
			Height:             int(height.Int64),
			AspectRatio:        aspect.Float64,
			Orientation:        orientation.String,
			IsMobileFriendly:   mobileFriendly.Bool,
			HasLargeDimensions: largeDims.Bool,
		}
	}
	return wf, nil
}

var _ Repo = (*PGRepo)(nil)
