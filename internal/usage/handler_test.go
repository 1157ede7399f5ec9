package usage_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"critique-backend/internal/usage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := usage.NewHandler(usage.NewService())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "guest:abc")
		c.Next()
	})
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	handler.RegisterDevRoutes(api)
	return r
}

func TestGetUsageReturnsDefaults(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Plan  string `json:"plan"`
		Limit int    `json:"limit"`
		Used  int    `json:"used"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Plan != "Starter" {
		t.Fatalf("expected Starter plan, got %q", payload.Plan)
	}
	if payload.Limit != 10 || payload.Used != 0 {
		t.Fatalf("expected 0/10 usage, got %d/%d", payload.Used, payload.Limit)
	}
}

func TestResetUsageZeroesCounter(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/usage/reset", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Used int `json:"used"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Used != 0 {
		t.Fatalf("expected used 0 after reset, got %d", payload.Used)
	}
}
