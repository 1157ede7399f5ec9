package wireframes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"critique-backend/internal/extract"
	"critique-backend/internal/shared/metrics"
	"critique-backend/internal/shared/storage/object"
	"critique-backend/internal/shared/telemetry"
)

// Service contains business logic for wireframes.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage, probes image dimensions or extracts
// text, and records the wireframe.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Wireframe, error) {
	if fileName == "" {
		return Wireframe{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Wireframe{}, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Wireframe{}, err
	}

	wf := Wireframe{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if IsImageMime(mimeType) {
		wf.Image = ProbeImage(data)
	} else {
		// Text-bearing uploads get a derived .extracted.txt alongside the original.
		if text, extractErr := extract.ExtractTextFromBytes(ctx, data, mimeType, fileName); extractErr == nil && text != "" {
			if saveErr := saveExtracted(ctx, s.Store, storageKey+".extracted.txt", text); saveErr == nil {
				now := time.Now().UTC()
				wf.ExtractedTextKey = storageKey + ".extracted.txt"
				wf.ExtractedAt = &now
			} else {
				telemetry.Error("wireframe_extract_save_failed", map[string]any{
					"wireframe_id": wf.ID,
					"error":        saveErr.Error(),
				})
			}
		}
	}

	if err := s.Repo.Create(ctx, wf); err != nil {
		return Wireframe{}, err
	}

	metrics.IncWireframeUploaded()
	return wf, nil
}

// Current returns the latest wireframe for a user.
func (s *Service) Current(ctx context.Context, userID string) (Wireframe, error) {
	if userID == "" {
		return Wireframe{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// Get returns a wireframe by ID for a user.
func (s *Service) Get(ctx context.Context, userID, wireframeID string) (Wireframe, error) {
	if userID == "" || wireframeID == "" {
		return Wireframe{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, wireframeID)
}

// List returns wireframes for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Wireframe, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

type keySaver interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
}

func saveExtracted(ctx context.Context, store object.ObjectStore, key string, text string) error {
	saver, ok := store.(keySaver)
	if !ok {
		return errors.New("object store does not support SaveWithKey")
	}
	_, err := saver.SaveWithKey(ctx, key, "text/plain; charset=utf-8", bytes.NewReader([]byte(text)))
	return err
}
