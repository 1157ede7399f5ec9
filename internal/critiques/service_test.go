package critiques

import (
	"context"
	"strings"
	"testing"
	"time"

	"critique-backend/internal/critiques/engine"
	localstore "critique-backend/internal/shared/storage/object/local"
	"critique-backend/internal/usage"
	"critique-backend/internal/wireframes"
)

func waitForTerminal(t *testing.T, repo Repo, critiqueID string) Critique {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		critique, err := repo.GetByID(context.Background(), critiqueID)
		if err != nil {
			t.Fatalf("get critique: %v", err)
		}
		if critique.Status == StatusCompleted || critique.Status == StatusFailed {
			return critique
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("critique %s never reached a terminal status", critiqueID)
	return Critique{}
}

func TestCreateCompletesDeterministically(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	description := "Login page with email field, password field, and submit button"
	created, err := svc.Create(context.Background(), "user-1", "", description, engine.PersonaEndUser)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != StatusQueued {
		t.Fatalf("expected queued, got %s", created.Status)
	}

	critique := waitForTerminal(t, repo, created.ID)
	if critique.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s)", critique.Status, critique.ErrorMessage)
	}
	if critique.Result == nil {
		t.Fatalf("expected result")
	}

	want := engine.GenerateResult(description, nil, engine.PersonaEndUser)
	if critique.Seed != want.Seed {
		t.Fatalf("expected seed %d, got %d", want.Seed, critique.Seed)
	}
	if len(critique.Result.Feedback) != len(want.Feedback) {
		t.Fatalf("expected %d feedback items, got %d", len(want.Feedback), len(critique.Result.Feedback))
	}
	for i := range want.Feedback {
		if critique.Result.Feedback[i].ID != want.Feedback[i].ID {
			t.Fatalf("feedback %d: expected id %s, got %s", i, want.Feedback[i].ID, critique.Result.Feedback[i].ID)
		}
	}
}

func TestCreateUnknownPersonaFallsBack(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	created, err := svc.Create(context.Background(), "user-1", "", "Dashboard with charts", "Pirate")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Persona != engine.PersonaGeneralDesigner {
		t.Fatalf("expected fallback persona, got %s", created.Persona)
	}

	critique := waitForTerminal(t, repo, created.ID)
	if critique.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", critique.Status)
	}
	if critique.Result.Persona != engine.PersonaGeneralDesigner {
		t.Fatalf("expected result persona %s, got %s", engine.PersonaGeneralDesigner, critique.Result.Persona)
	}
}

func TestCreateWithWireframeUsesImageHeuristics(t *testing.T) {
	repo := NewMemoryRepo()
	wfRepo := wireframes.NewMemoryRepo()

	wf := wireframes.Wireframe{
		ID:       "wf-1",
		UserID:   "user-1",
		FileName: "mobile.png",
		MimeType: "image/png",
		Image: &wireframes.ImageInfo{
			Width:            375,
			Height:           667,
			AspectRatio:      375.0 / 667.0,
			Orientation:      "portrait",
			IsMobileFriendly: true,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := wfRepo.Create(context.Background(), wf); err != nil {
		t.Fatalf("create wireframe: %v", err)
	}

	svc := &Service{Repo: repo, WireframeRepo: wfRepo}
	created, err := svc.Create(context.Background(), "user-1", "wf-1", "Checkout review screen with order summary", engine.PersonaEndUser)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	critique := waitForTerminal(t, repo, created.ID)
	if critique.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s)", critique.Status, critique.ErrorMessage)
	}

	found := false
	for _, item := range critique.Result.Feedback {
		if strings.HasPrefix(item.ID, "feedback-image-mobile-") {
			found = true
			if item.Category != engine.CategoryMobile {
				t.Fatalf("expected mobile category for image item, got %s", item.Category)
			}
		}
	}
	if !found {
		t.Fatalf("expected a dimension-derived mobile item for a narrow wireframe")
	}

	// The narrow canvas also changes the seed relative to a text-only critique.
	noImage := engine.GenerateResult("Checkout review screen with order summary", nil, engine.PersonaEndUser)
	if critique.Seed == noImage.Seed {
		t.Fatalf("expected image dimensions to contribute to the seed")
	}
}

func TestCreateFromDocumentUsesExtractedText(t *testing.T) {
	repo := NewMemoryRepo()
	wfRepo := wireframes.NewMemoryRepo()
	store := localstore.New(t.TempDir())

	docText := "Login form with unlabeled input fields and no error messages"
	wfSvc := &wireframes.Service{Store: store, Repo: wfRepo}
	wf, err := wfSvc.Upload(context.Background(), "user-1", "notes.txt", strings.NewReader(docText+"\n"))
	if err != nil {
		t.Fatalf("upload document: %v", err)
	}
	if wf.ExtractedTextKey == "" {
		t.Fatalf("expected extracted text key for a text upload")
	}

	svc := &Service{Repo: repo, WireframeRepo: wfRepo, Store: store}
	created, err := svc.Create(context.Background(), "user-1", wf.ID, "", engine.PersonaEndUser)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	critique := waitForTerminal(t, repo, created.ID)
	if critique.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s)", critique.Status, critique.ErrorMessage)
	}

	want := engine.GenerateResult(docText, nil, engine.PersonaEndUser)
	if critique.Seed != want.Seed {
		t.Fatalf("expected seed %d from extracted text, got %d", want.Seed, critique.Seed)
	}
	if len(critique.Result.Feedback) != len(want.Feedback) {
		t.Fatalf("expected %d feedback items, got %d", len(want.Feedback), len(critique.Result.Feedback))
	}
	for i := range want.Feedback {
		if critique.Result.Feedback[i].ID != want.Feedback[i].ID {
			t.Fatalf("feedback %d: expected id %s, got %s", i, want.Feedback[i].ID, critique.Result.Feedback[i].ID)
		}
	}

	// An empty-description critique must not fall back to the generic result.
	generic := engine.GenerateResult("", nil, engine.PersonaEndUser)
	if critique.Seed == generic.Seed {
		t.Fatalf("expected extracted text to drive the seed, got the empty-description seed")
	}
}

func TestCreateUnknownWireframeFails(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), WireframeRepo: wireframes.NewMemoryRepo()}

	_, err := svc.Create(context.Background(), "user-1", "missing", "Some screen", engine.PersonaEndUser)
	if err == nil {
		t.Fatalf("expected error for missing wireframe")
	}
}

func TestCreateEnforcesUsageLimit(t *testing.T) {
	repo := NewMemoryRepo()
	usageSvc := usage.NewService()
	svc := &Service{Repo: repo, Usage: usageSvc}

	// Default plan allows 10 critiques per period.
	for i := 0; i < 10; i++ {
		if _, err := svc.Create(context.Background(), "user-1", "", "Landing page", engine.PersonaEndUser); err != nil {
			t.Fatalf("create %d: %v", i+1, err)
		}
	}

	_, err := svc.Create(context.Background(), "user-1", "", "Landing page", engine.PersonaEndUser)
	if err != usage.ErrLimitReached {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
}
