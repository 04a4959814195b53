package menu

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
// GET /api/menu-items
// --------------------------------------------------
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu items"})
		return
	}
	if items == nil {
		items = []Item{}
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// --------------------------------------------------
// GET /api/menu-items/foodtype/:type
// --------------------------------------------------
func (h *Handler) ItemsByFoodType(c *gin.Context) {
	grouped, err := h.service.ItemsByFoodType(c.Request.Context(), c.Param("type"))
	if err != nil {
		// A failed catalog fetch degrades to an empty menu.
		c.JSON(http.StatusOK, gin.H{"data": map[string][]Item{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": grouped})
}

// --------------------------------------------------
// POST /api/menu-items
// --------------------------------------------------
func (h *Handler) CreateItem(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		FoodType string `json:"food_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req.Name, req.Category, req.FoodType)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": item})
}

// --------------------------------------------------
// GET /api/banquet-categories/all
// --------------------------------------------------
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"data": []Category{}})
		return
	}
	if categories == nil {
		categories = []Category{}
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// --------------------------------------------------
// POST /api/banquet-categories
// --------------------------------------------------
func (h *Handler) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": category})
}

// --------------------------------------------------
// GET /api/plan-limits/get
// --------------------------------------------------
func (h *Handler) PlanLimits(c *gin.Context) {
	planLimits, err := h.service.PlanLimits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"data": []PlanLimit{}})
		return
	}
	if planLimits == nil {
		planLimits = []PlanLimit{}
	}
	c.JSON(http.StatusOK, gin.H{"data": planLimits})
}

// --------------------------------------------------
// GET /api/plan-limits/formatted
// --------------------------------------------------
func (h *Handler) FormattedPlanLimits(c *gin.Context) {
	formatted, err := h.service.FormattedPlanLimits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"data": map[string]map[string]int{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": formatted})
}

// --------------------------------------------------
// POST /api/plan-limits/check-selection
// --------------------------------------------------
func (h *Handler) CheckSelection(c *gin.Context) {
	var req struct {
		ItemID      string   `json:"item_id"`
		SelectedIDs []string `json:"selected_ids"`
		FoodType    string   `json:"food_type"`
		RatePlan    string   `json:"rate_plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	allowed, err := h.service.CheckSelection(
		c.Request.Context(),
		req.ItemID,
		req.SelectedIDs,
		req.FoodType,
		req.RatePlan,
	)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "selection check failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}
