package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"popview/internal/api/dto"
	"popview/internal/api/models"
	"popview/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listService  service.ListService
	titleService service.TitleService
	logger       *slog.Logger
}

func NewListHandler(listService service.ListService, titleService service.TitleService, logger *slog.Logger) *ListHandler {
	return &ListHandler{listService: listService, titleService: titleService, logger: logger}
}

// RegisterRoutes registers list CRUD routes. The static /public route
// coexists with the :list_id parameter routes.
func (h *ListHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/public", h.ListPublic)
	rg.GET("/:list_id", h.Get)
	rg.PUT("/:list_id", h.Update)
	rg.DELETE("/:list_id", h.Delete)
	rg.GET("/:list_id/titles", h.ListTitles)
}

// RegisterUserRoutes registers the per-user list lookup under /users.
func (h *ListHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/:user_id/lists", h.ListForUser)
}

// Create makes a new list owned by the given user
// POST /lists
func (h *ListHandler) Create(c *gin.Context) {
	var req dto.CreateListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "create list", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromListToResponse(*list))
}

// Get retrieves a list by id
// GET /lists/:list_id
func (h *ListHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}

	list, err := h.listService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "get list", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromListToResponse(*list))
}

// List retrieves all lists
// GET /lists
func (h *ListHandler) List(c *gin.Context) {
	lists, err := h.listService.GetAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "list lists", err)
		return
	}
	c.JSON(http.StatusOK, toListResponses(lists))
}

// ListPublic retrieves public lists only
// GET /lists/public
func (h *ListHandler) ListPublic(c *gin.Context) {
	lists, err := h.listService.GetPublic(c.Request.Context())
	if err != nil {
		h.internalError(c, "list public lists", err)
		return
	}
	c.JSON(http.StatusOK, toListResponses(lists))
}

// ListForUser retrieves the lists a user owns
// GET /users/:user_id/lists
func (h *ListHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	lists, err := h.listService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoListsForUser) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "list user lists", err)
		return
	}

	c.JSON(http.StatusOK, toListResponses(lists))
}

// ListTitles retrieves the titles attached to a list
// GET /lists/:list_id/titles
func (h *ListHandler) ListTitles(c *gin.Context) {
	listID, err := strconv.ParseInt(c.Param("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}

	titles, err := h.titleService.GetByList(c.Request.Context(), listID)
	if err != nil {
		if errors.Is(err, service.ErrNoTitlesInList) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "list titles in list", err)
		return
	}

	responses := make([]dto.TitleResponse, 0, len(titles))
	for _, title := range titles {
		responses = append(responses, dto.FromTitleToResponse(title))
	}
	c.JSON(http.StatusOK, responses)
}

// Update applies a partial update to a list
// PUT /lists/:list_id
func (h *ListHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}

	var req dto.UpdateListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrListNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "update list", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromListToResponse(*list))
}

// Delete removes a list; membership and ownership links go with it
// DELETE /lists/:list_id
func (h *ListHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}

	if err := h.listService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "delete list", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "list deleted"})
}

func (h *ListHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func toListResponses(lists []models.List) []dto.ListResponse {
	responses := make([]dto.ListResponse, 0, len(lists))
	for _, list := range lists {
		responses = append(responses, dto.FromListToResponse(list))
	}
	return responses
}
