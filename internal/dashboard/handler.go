package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/dashboard/summary
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.Summary(c.Request.Context())})
}
