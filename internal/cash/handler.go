package cash

import (
	"errors"
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
// POST /api/cash-transactions/add-transaction
// --------------------------------------------------
func (h *Handler) AddTransaction(c *gin.Context) {
	var req struct {
		Amount      float64 `json:"amount"`
		Type        string  `json:"type"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tx, err := h.service.Add(c.Request.Context(), req.Amount, req.Type, req.Description)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": tx})
}

// --------------------------------------------------
// GET /api/cash-transactions/cash-at-reception
// --------------------------------------------------
func (h *Handler) CashAtReception(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// --------------------------------------------------
// GET /api/cash-transactions
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	transactions, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transactions"})
		return
	}
	if transactions == nil {
		transactions = []Transaction{}
	}
	c.JSON(http.StatusOK, gin.H{"data": transactions})
}
