package menu

// Category is a banquet menu category (Starters, Main Course, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a single menu item. The category is a structured reference,
// not a string to be parsed out of the item.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	FoodType     string `json:"food_type"`
}

// PlanLimit caps how many items may be picked per category for one
// {food type, rate plan} pair. Bookings with no matching entry are
// unconstrained.
type PlanLimit struct {
	FoodType string         `json:"food_type"`
	RatePlan string         `json:"rate_plan"`
	Limits   map[string]int `json:"limits"`
}
