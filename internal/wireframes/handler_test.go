package wireframes_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	localstore "critique-backend/internal/shared/storage/object/local"
	"critique-backend/internal/wireframes"
)

func newTestRouter(t *testing.T, identity string, guest bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &wireframes.Service{
		Store: localstore.New(t.TempDir()),
		Repo:  wireframes.NewMemoryRepo(),
	}
	handler := wireframes.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", identity)
		c.Set("isGuest", guest)
		c.Next()
	})
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func uploadPNG(t *testing.T, router *gin.Engine, width, height int) *httptest.ResponseRecorder {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "wireframe.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(pngBuf.Bytes()); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wireframes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestUploadImageProbesDimensions(t *testing.T) {
	router := newTestRouter(t, "guest:abc", true)

	resp := uploadPNG(t, router, 375, 667)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created wireframes.WireframeResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.WireframeID == "" {
		t.Fatalf("expected wireframeId")
	}
	if created.MimeType != "image/png" {
		t.Fatalf("expected image/png, got %s", created.MimeType)
	}
	if created.Image == nil {
		t.Fatalf("expected image metadata")
	}
	if created.Image.Width != 375 || created.Image.Height != 667 {
		t.Fatalf("unexpected dimensions %dx%d", created.Image.Width, created.Image.Height)
	}
	if !created.Image.IsMobileFriendly {
		t.Fatalf("expected mobile friendly")
	}
}

func TestCurrentReturnsLatestUpload(t *testing.T) {
	router := newTestRouter(t, "guest:abc", true)

	if resp := uploadPNG(t, router, 800, 600); resp.Code != http.StatusCreated {
		t.Fatalf("first upload: expected 201, got %d", resp.Code)
	}
	if resp := uploadPNG(t, router, 1024, 768); resp.Code != http.StatusCreated {
		t.Fatalf("second upload: expected 201, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wireframes/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var current wireframes.WireframeResponse
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if current.Image == nil || current.Image.Width != 1024 {
		t.Fatalf("expected latest upload (1024 wide), got %+v", current.Image)
	}
}

func TestCurrentWithoutUploadIs404(t *testing.T) {
	router := newTestRouter(t, "guest:abc", true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wireframes/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListRequiresLogin(t *testing.T) {
	router := newTestRouter(t, "guest:abc", true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wireframes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest list, got %d", resp.Code)
	}
}

func TestListForAuthedUser(t *testing.T) {
	router := newTestRouter(t, "user-1", false)

	if resp := uploadPNG(t, router, 640, 480); resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wireframes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var listed []wireframes.WireframeResponse
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 wireframe, got %d", len(listed))
	}
}
