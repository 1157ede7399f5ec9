package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"critique-backend/internal/critiques/engine"
	"critique-backend/internal/shared/server/middleware"
	"critique-backend/internal/shared/server/respond"
	"critique-backend/internal/wireframes"
)

// Handler wires HTTP handlers to the sessions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/session", h.save)
	rg.GET("/session", h.get)
	rg.DELETE("/session", h.clear)
}

type saveSessionRequest struct {
	Description string                `json:"description"`
	Persona     string                `json:"persona"`
	Image       *wireframes.ImageInfo `json:"image"`
	Feedback    []engine.FeedbackItem `json:"feedback"`
	Notes       map[string]string     `json:"notes"`
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.Save(c.Request.Context(), Session{
		UserID:      userID,
		Description: req.Description,
		Persona:     req.Persona,
		Image:       req.Image,
		Feedback:    req.Feedback,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save session", nil)
		return
	}

	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	session, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no saved session", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch session", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) clear(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Clear(c.Request.Context(), userID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear session", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
