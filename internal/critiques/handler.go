package critiques

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"critique-backend/internal/shared/server/middleware"
	"critique-backend/internal/shared/server/respond"
	"critique-backend/internal/usage"
	"critique-backend/internal/wireframes"
)

// Handler wires HTTP handlers to the critiques service.
type Handler struct {
	Svc  *Service
	poll *pollLimiter
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{
		Svc:  svc,
		poll: newPollLimiter(0, nil),
	}
}

// RegisterRoutes attaches critique routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/critiques", h.startCritique)
	rg.GET("/critiques", h.listCritiques)
	rg.GET("/critiques/:id", h.getCritique)
	rg.GET("/critiques/:id/export", h.exportCritique)
}

type createCritiqueRequest struct {
	WireframeID string `json:"wireframeId"`
	Description string `json:"description"`
	Persona     string `json:"persona"`
}

func (h *Handler) startCritique(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createCritiqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.WireframeID = strings.TrimSpace(req.WireframeID)
	req.Persona = strings.TrimSpace(req.Persona)

	if strings.TrimSpace(req.Description) == "" && req.WireframeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "description or wireframeId is required", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	critique, err := h.Svc.Create(ctx, userID, req.WireframeID, req.Description, req.Persona)
	if err != nil {
		switch {
		case errors.Is(err, wireframes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "wireframe not found", nil)
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your critique limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start critique", nil)
		}
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"critiqueId": critique.ID,
		"status":     critique.Status,
		"persona":    critique.Persona,
	})
}

func (h *Handler) getCritique(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	critiqueID := c.Param("id")
	if critiqueID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "critique id is required", nil)
		return
	}

	if !h.poll.Allow(userID, critiqueID) {
		c.Header("Retry-After", strconv.Itoa(h.poll.RetryAfterSeconds()))
		respond.Error(c, http.StatusTooManyRequests, "poll_limited", "Polling too frequently", nil)
		return
	}

	critique, err := h.Svc.Get(c.Request.Context(), critiqueID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "critique not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch critique", nil)
		}
		return
	}
	if critique.UserID != userID {
		respond.Error(c, http.StatusNotFound, "not_found", "critique not found", nil)
		return
	}

	resp := gin.H{
		"id":      critique.ID,
		"status":  critique.Status,
		"persona": critique.Persona,
	}
	if critique.WireframeID != "" {
		resp["wireframeId"] = critique.WireframeID
	}
	if critique.Status == StatusCompleted && critique.Result != nil {
		resp["seed"] = critique.Seed
		resp["result"] = critique.Result
	}
	if critique.Status == StatusFailed {
		resp["errorCode"] = critique.ErrorCode
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) listCritiques(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	critiques, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list critiques", nil)
		return
	}

	resp := make([]gin.H, 0, len(critiques))
	for _, critique := range critiques {
		item := gin.H{
			"critiqueId": critique.ID,
			"status":     critique.Status,
			"persona":    critique.Persona,
			"createdAt":  critique.CreatedAt,
		}
		if critique.WireframeID != "" {
			item["wireframeId"] = critique.WireframeID
		}
		if critique.Status == StatusCompleted && critique.Result != nil {
			item["feedbackCount"] = len(critique.Result.Feedback)
		}
		resp = append(resp, item)
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) exportCritique(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	critiqueID := c.Param("id")
	if critiqueID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "critique id is required", nil)
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "text")))
	if format != "text" && format != "markdown" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "format must be text or markdown", nil)
		return
	}

	critique, err := h.Svc.Get(c.Request.Context(), critiqueID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "critique not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch critique", nil)
		}
		return
	}
	if critique.UserID != userID {
		respond.Error(c, http.StatusNotFound, "not_found", "critique not found", nil)
		return
	}
	if critique.Status != StatusCompleted || critique.Result == nil {
		respond.Error(c, http.StatusConflict, "not_ready", "critique is not completed yet", nil)
		return
	}

	var body, contentType, ext string
	switch format {
	case "markdown":
		body = ExportMarkdown(critique)
		contentType = "text/markdown; charset=utf-8"
		ext = "md"
	default:
		body = ExportText(critique)
		contentType = "text/plain; charset=utf-8"
		ext = "txt"
	}

	c.Header("Content-Disposition", `attachment; filename="critique-`+critique.ID+`.`+ext+`"`)
	c.Data(http.StatusOK, contentType, []byte(body))
}
