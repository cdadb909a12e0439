package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibe-backend/internal/repositories"
	"vibe-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
	rg.GET("/analyses/repository/:repositoryId", h.listByRepository)
}

func (h *Handler) list(c *gin.Context) {
	analyses, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.JSON(c, http.StatusOK, analyses)
}

func (h *Handler) get(c *gin.Context) {
	analysis, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		return
	}
	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) listByRepository(c *gin.Context) {
	analyses, err := h.Svc.ListByRepository(c.Request.Context(), c.Param("repositoryId"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "repository not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.JSON(c, http.StatusOK, analyses)
}
