package room

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /api/rooms
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rooms"})
		return
	}
	if rooms == nil {
		rooms = []Room{}
	}
	c.JSON(http.StatusOK, gin.H{"data": rooms})
}

// --------------------------------------------------
// POST /api/rooms
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var rm Room
	if err := c.ShouldBindJSON(&rm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(rm.Number) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room number is required"})
		return
	}

	rm.ID = uuid.New().String()
	if rm.Status == "" {
		rm.Status = StatusAvailable
	}
	if err := h.repo.Create(c.Request.Context(), &rm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": rm})
}

// --------------------------------------------------
// PUT /api/rooms/:id/status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch req.Status {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room status"})
		return
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room status updated"})
}
