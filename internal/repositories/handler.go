package repositories

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches repository routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/repositories", h.create)
	rg.GET("/repositories", h.list)
	rg.GET("/repositories/:id", h.get)
	rg.PUT("/repositories/:id", h.update)
	rg.DELETE("/repositories/:id", h.delete)
}

type repositoryRequest struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	var req repositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	repo, err := h.Svc.Register(c.Request.Context(), req.URL, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register repository", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, repo)
}

func (h *Handler) list(c *gin.Context) {
	repos, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list repositories", nil)
		return
	}
	respond.JSON(c, http.StatusOK, repos)
}

func (h *Handler) get(c *gin.Context) {
	repo, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "repository not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch repository", nil)
		return
	}
	respond.JSON(c, http.StatusOK, repo)
}

func (h *Handler) update(c *gin.Context) {
	var req repositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	repo, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.URL, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "repository not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update repository", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, repo)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "repository not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete repository", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "Repository deleted successfully"})
}
