package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"critique-backend/internal/critiques"
	"critique-backend/internal/wireframes"
)

func TestClaimGuestMigratesData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	wfRepo := wireframes.NewMemoryRepo()
	crRepo := critiques.NewMemoryRepo()
	svc := NewService(wfRepo, crRepo)
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("isGuest", false)
		c.Next()
	})
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	guestID := "11111111-1111-1111-1111-111111111111"
	guestUserID := "guest:" + guestID

	wf := wireframes.Wireframe{
		ID:        "wf-1",
		UserID:    guestUserID,
		FileName:  "checkout.png",
		MimeType:  "image/png",
		SizeBytes: 123,
		CreatedAt: time.Now().UTC(),
	}
	if err := wfRepo.Create(context.Background(), wf); err != nil {
		t.Fatalf("create wireframe: %v", err)
	}
	critique := critiques.Critique{
		ID:          "critique-1",
		WireframeID: wf.ID,
		UserID:      guestUserID,
		Status:      critiques.StatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	if err := crRepo.Create(context.Background(), critique); err != nil {
		t.Fatalf("create critique: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	wfs, err := wfRepo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list wireframes: %v", err)
	}
	if len(wfs) != 1 {
		t.Fatalf("expected 1 migrated wireframe, got %d", len(wfs))
	}

	crs, err := crRepo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list critiques: %v", err)
	}
	if len(crs) != 1 {
		t.Fatalf("expected 1 migrated critique, got %d", len(crs))
	}
}

func TestClaimGuestIdempotentAndIsolated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	wfRepo := wireframes.NewMemoryRepo()
	crRepo := critiques.NewMemoryRepo()
	svc := NewService(wfRepo, crRepo)
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("isGuest", false)
		c.Next()
	})
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	guestID := "22222222-2222-2222-2222-222222222222"
	guestUserID := "guest:" + guestID

	wf := wireframes.Wireframe{
		ID:        "wf-2",
		UserID:    guestUserID,
		FileName:  "checkout.png",
		MimeType:  "image/png",
		SizeBytes: 123,
		CreatedAt: time.Now().UTC(),
	}
	if err := wfRepo.Create(context.Background(), wf); err != nil {
		t.Fatalf("create wireframe: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req2.Header.Set("X-Guest-Id", guestID)
	resp2 := httptest.NewRecorder()
	router.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected status 200 on idempotent call, got %d", resp2.Code)
	}

	wfs, err := wfRepo.ListByUser(context.Background(), "user-2", 10, 0)
	if err != nil {
		t.Fatalf("list wireframes: %v", err)
	}
	if len(wfs) != 0 {
		t.Fatalf("expected no wireframes for other user, got %d", len(wfs))
	}
}
