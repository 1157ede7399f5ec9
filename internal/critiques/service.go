package critiques

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"critique-backend/internal/critiques/engine"
	"critique-backend/internal/shared/metrics"
	"critique-backend/internal/shared/storage/object"
	"critique-backend/internal/shared/telemetry"
	"critique-backend/internal/usage"
	"critique-backend/internal/wireframes"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Service contains business logic for critiques.
type Service struct {
	Repo          Repo
	Usage         *usage.Service
	WireframeRepo wireframes.Repo
	Store         object.ObjectStore
	Version       string
}

// Create enqueues a new critique and kicks off asynchronous completion.
// Unknown personas fall back to the General Designer profile.
func (s *Service) Create(ctx context.Context, userID, wireframeID, description, persona string) (Critique, error) {
	if userID == "" {
		return Critique{}, errors.New("userID is required")
	}
	if !engine.KnownPersona(persona) {
		persona = engine.PersonaGeneralDesigner
	}

	if wireframeID != "" {
		if s.WireframeRepo == nil {
			return Critique{}, errors.New("missing wireframe repo")
		}
		if _, err := s.WireframeRepo.GetByID(ctx, userID, wireframeID); err != nil {
			return Critique{}, err
		}
	}

	if s.Usage != nil {
		ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
		if err != nil {
			return Critique{}, err
		}
		if !ok {
			return Critique{}, usage.ErrLimitReached
		}
	}

	critique := Critique{
		ID:          uuid.NewString(),
		WireframeID: wireframeID,
		UserID:      userID,
		Description: description,
		Persona:     persona,
		Version:     normalizeVersion(s.Version),
		Status:      StatusQueued,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, critique); err != nil {
		return Critique{}, err
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			return Critique{}, err
		}
	}

	go s.completeAsync(backgroundWithRequestID(ctx), critique.ID)

	return critique, nil
}

// Get returns a critique by ID.
func (s *Service) Get(ctx context.Context, critiqueID string) (Critique, error) {
	if critiqueID == "" {
		return Critique{}, errors.New("critiqueID is required")
	}
	return s.Repo.GetByID(ctx, critiqueID)
}

// List returns critiques for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Critique, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func normalizeVersion(version string) string {
	if version == "" {
		return "phrase-table:v1"
	}
	return version
}

func (s *Service) completeAsync(ctx context.Context, critiqueID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failCritique(ctx, critiqueID, "", ErrorCodeInternal, fmt.Errorf("panic: %v", r))
		}
	}()
	startedAt := time.Now().UTC()
	if err := s.Repo.MarkProcessing(ctx, critiqueID, startedAt); err != nil {
		s.failCritique(ctx, critiqueID, "", ErrorCodeStorage, fmt.Errorf("set processing failed: %w", err))
		return
	}

	critique, err := s.Repo.GetByID(ctx, critiqueID)
	if err != nil {
		s.failCritique(ctx, critiqueID, "", ErrorCodeStorage, fmt.Errorf("critique lookup: %w", err))
		return
	}
	metrics.IncCritiqueStarted()
	telemetry.Info("critique.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"user_id":           critique.UserID,
		"wireframe_id":      critique.WireframeID,
		"critique_id":       critique.ID,
		"persona":           critique.Persona,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	description := critique.Description
	var img *engine.ImageMetadata
	if critique.WireframeID != "" {
		if s.WireframeRepo == nil {
			s.failCritique(ctx, critiqueID, critique.UserID, ErrorCodeInternal, errors.New("missing wireframe repo"))
			return
		}
		wf, err := s.WireframeRepo.GetByID(ctx, critique.UserID, critique.WireframeID)
		if err != nil {
			s.failCritique(ctx, critiqueID, critique.UserID, ErrorCodeStorage, fmt.Errorf("wireframe lookup id=%s: %w", critique.WireframeID, err))
			return
		}
		img = toEngineMetadata(wf.Image)

		// Document wireframes carry no typed description; their extracted
		// text stands in for it.
		if description == "" && wf.ExtractedTextKey != "" {
			text, err := s.loadExtractedText(ctx, wf.ExtractedTextKey)
			if err != nil {
				s.failCritique(ctx, critiqueID, critique.UserID, ErrorCodeStorage, fmt.Errorf("extracted text key=%s: %w", wf.ExtractedTextKey, err))
				return
			}
			description = text
		}
	}

	result := engine.GenerateResult(description, img, critique.Persona)

	completedAt := time.Now().UTC()
	if err := s.Repo.MarkCompleted(ctx, critiqueID, result.Seed, &result, completedAt); err != nil {
		s.failCritique(ctx, critiqueID, critique.UserID, ErrorCodeStorage, fmt.Errorf("store result failed: %w", err))
		return
	}

	metrics.IncCritiqueCompleted()
	metrics.ObserveCritiqueDurationMs(float64(completedAt.Sub(startedAt) / time.Millisecond))
	telemetry.Info("critique.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"user_id":           critique.UserID,
		"wireframe_id":      critique.WireframeID,
		"critique_id":       critique.ID,
		"persona":           critique.Persona,
		"seed":              result.Seed,
		"feedback_count":    len(result.Feedback),
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
	})
}

func (s *Service) loadExtractedText(ctx context.Context, key string) (string, error) {
	if s.Store == nil {
		return "", errors.New("missing object store")
	}
	body, err := s.Store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Service) failCritique(ctx context.Context, critiqueID, userID, errorCode string, cause error) {
	metrics.IncCritiqueFailed()
	telemetry.Error("critique.failed", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"user_id":     userID,
		"critique_id": critiqueID,
		"error_code":  errorCode,
		"error":       cause.Error(),
	})
	if err := s.Repo.MarkFailed(ctx, critiqueID, errorCode, cause.Error(), time.Now().UTC()); err != nil {
		telemetry.Error("critique.fail_store", map[string]any{
			"request_id":  requestIDFromContext(ctx),
			"critique_id": critiqueID,
			"error":       err.Error(),
		})
	}
}

func toEngineMetadata(info *wireframes.ImageInfo) *engine.ImageMetadata {
	if info == nil {
		return nil
	}
	return &engine.ImageMetadata{
		Width:              info.Width,
		Height:             info.Height,
		AspectRatio:        info.AspectRatio,
		IsMobileFriendly:   info.IsMobileFriendly,
		HasLargeDimensions: info.HasLargeDimensions,
		Orientation:        info.Orientation,
	}
}
