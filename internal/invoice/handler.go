package invoice

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/checkout/:id/invoice
// --------------------------------------------------
func (h *Handler) Render(c *gin.Context) {
	inv, err := h.service.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}
