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

type InteractionHandler struct {
	interactionService service.InteractionService
	logger             *slog.Logger
}

func NewInteractionHandler(interactionService service.InteractionService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService, logger: logger}
}

// RegisterRoutes registers comment and rating routes on the /users group.
func (h *InteractionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:user_id/titles/:title_id/comments", h.Upsert)
	rg.GET("/:user_id/titles/:title_id/comments", h.Get)
	rg.PUT("/:user_id/titles/:title_id/comments", h.Update)
	rg.DELETE("/:user_id/titles/:title_id/comments", h.Clear)
	rg.PUT("/:user_id/titles/:title_id/rating", h.SetRating)
}

// RegisterTitleRoutes registers the per-title comment listing on /titles.
func (h *InteractionHandler) RegisterTitleRoutes(rg *gin.RouterGroup) {
	rg.GET("/:title_id/comments", h.ListForTitle)
}

// Upsert creates or overwrites a user's comment and rating on a title
// POST /users/:user_id/titles/:title_id/comments
func (h *InteractionHandler) Upsert(c *gin.Context) {
	userID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	var req dto.UpsertCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.interactionService.UpsertComment(c.Request.Context(), userID, titleID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTitleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "upsert comment", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment saved"})
}

// Get retrieves a user's comment and rating on a title
// GET /users/:user_id/titles/:title_id/comments
func (h *InteractionHandler) Get(c *gin.Context) {
	userID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	interactions, err := h.interactionService.GetComments(c.Request.Context(), userID, titleID)
	if err != nil {
		if errors.Is(err, service.ErrNoCommentsFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "get comments", err)
		return
	}

	responses := make([]dto.CommentResponse, 0, len(interactions))
	for _, interaction := range interactions {
		responses = append(responses, dto.FromInteractionToComment(interaction))
	}
	c.JSON(http.StatusOK, responses)
}

// ListForTitle retrieves every commented interaction on a title
// GET /titles/:title_id/comments
func (h *InteractionHandler) ListForTitle(c *gin.Context) {
	titleID, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return
	}

	interactions, err := h.interactionService.GetCommentsForTitle(c.Request.Context(), titleID)
	if err != nil {
		if errors.Is(err, service.ErrNoCommentsFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "list title comments", err)
		return
	}

	responses := make([]dto.TitleCommentResponse, 0, len(interactions))
	for _, interaction := range interactions {
		responses = append(responses, dto.FromInteractionToTitleComment(interaction))
	}
	c.JSON(http.StatusOK, responses)
}

// Update applies a partial update to a user's comment or rating
// PUT /users/:user_id/titles/:title_id/comments
func (h *InteractionHandler) Update(c *gin.Context) {
	userID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.interactionService.UpdateComment(c.Request.Context(), userID, titleID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields), errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInteractionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "update comment", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment updated"})
}

// Clear blanks a user's comment and zeroes the rating, keeping the row
// DELETE /users/:user_id/titles/:title_id/comments
func (h *InteractionHandler) Clear(c *gin.Context) {
	userID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	if err := h.interactionService.ClearComment(c.Request.Context(), userID, titleID); err != nil {
		if errors.Is(err, service.ErrInteractionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "clear comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment cleared"})
}

// SetRating updates a user's rating on a title
// PUT /users/:user_id/titles/:title_id/rating
func (h *InteractionHandler) SetRating(c *gin.Context) {
	userID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	var req dto.SetRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.interactionService.SetRating(c.Request.Context(), userID, titleID, *req.Rating); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInteractionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "set rating", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating saved"})
}

func (h *InteractionHandler) parsePair(c *gin.Context) (userID, titleID int64, ok bool) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, 0, false
	}
	titleID, err = strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return 0, 0, false
	}
	return userID, titleID, true
}

func (h *InteractionHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
