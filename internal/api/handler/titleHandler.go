package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"popview/internal/api/dto"
	"popview/internal/api/service"

	"github.com/gin-gonic/gin"
)

type TitleHandler struct {
	titleService service.TitleService
	logger       *slog.Logger
}

func NewTitleHandler(titleService service.TitleService, logger *slog.Logger) *TitleHandler {
	return &TitleHandler{titleService: titleService, logger: logger}
}

// RegisterRoutes registers title CRUD routes
func (h *TitleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:title_id", h.Get)
	rg.PUT("/:title_id", h.Update)
	rg.DELETE("/:title_id", h.Delete)
}

// Create adds a catalog entry
// POST /titles
func (h *TitleHandler) Create(c *gin.Context) {
	var req dto.CreateTitleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.titleService.Create(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, "create title", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTitleToResponse(*title))
}

// Get retrieves a title by id
// GET /titles/:title_id
func (h *TitleHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return
	}

	title, err := h.titleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTitleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "get title", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTitleToResponse(*title))
}

// List retrieves all titles
// GET /titles
func (h *TitleHandler) List(c *gin.Context) {
	titles, err := h.titleService.GetAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "list titles", err)
		return
	}

	responses := make([]dto.TitleResponse, 0, len(titles))
	for _, title := range titles {
		responses = append(responses, dto.FromTitleToResponse(title))
	}
	c.JSON(http.StatusOK, responses)
}

// Update applies a partial update to a title
// PUT /titles/:title_id
func (h *TitleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return
	}

	var req dto.UpdateTitleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.titleService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTitleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "update title", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromTitleToResponse(*title))
}

// Delete removes a title; membership and interaction links go with it
// DELETE /titles/:title_id
func (h *TitleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return
	}

	if err := h.titleService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTitleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "delete title", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "title deleted"})
}

func (h *TitleHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
