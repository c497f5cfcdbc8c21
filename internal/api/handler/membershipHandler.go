package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"popview/internal/api/service"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService service.MembershipService
	logger            *slog.Logger
}

func NewMembershipHandler(membershipService service.MembershipService, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService, logger: logger}
}

// RegisterRoutes registers attach/detach routes on the /lists group.
func (h *MembershipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:list_id/titles/:title_id", h.Attach)
	rg.DELETE("/:list_id/titles/:title_id", h.Detach)
}

// Attach adds a title to a list
// POST /lists/:list_id/titles/:title_id
func (h *MembershipHandler) Attach(c *gin.Context) {
	listID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	if err := h.membershipService.Attach(c.Request.Context(), listID, titleID); err != nil {
		switch {
		case errors.Is(err, service.ErrListNotFound), errors.Is(err, service.ErrTitleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyInList):
			// the existing contract reports a duplicate attach as a bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "attach title", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "title added to list"})
}

// Detach removes a title from a list
// DELETE /lists/:list_id/titles/:title_id
func (h *MembershipHandler) Detach(c *gin.Context) {
	listID, titleID, ok := h.parsePair(c)
	if !ok {
		return
	}

	if err := h.membershipService.Detach(c.Request.Context(), listID, titleID); err != nil {
		if errors.Is(err, service.ErrNotInList) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "detach title", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "title removed from list"})
}

func (h *MembershipHandler) parsePair(c *gin.Context) (listID, titleID int64, ok bool) {
	listID, err := strconv.ParseInt(c.Param("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return 0, 0, false
	}
	titleID, err = strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return 0, 0, false
	}
	return listID, titleID, true
}

func (h *MembershipHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
