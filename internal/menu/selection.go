package menu

// LimitsFor finds the category caps for a food type / rate plan pair.
func LimitsFor(planLimits []PlanLimit, foodType, ratePlan string) (map[string]int, bool) {
	for _, pl := range planLimits {
		if pl.FoodType == foodType && pl.RatePlan == ratePlan {
			return pl.Limits, true
		}
	}
	return nil, false
}

// CategoryCount counts how many of the selected items belong to the
// given category.
func CategoryCount(selected []Item, categoryName string) int {
	count := 0
	for _, item := range selected {
		if item.CategoryName == categoryName {
			count++
		}
	}
	return count
}

// AllowSelection reports whether item may join the current selection.
// Toggling off an already selected item is always allowed; only
// additions are subject to the per-category cap. With no matching plan
// entry, or no cap for the item's category, the selection is
// unconstrained.
func AllowSelection(item Item, selected []Item, planLimits []PlanLimit, foodType, ratePlan string) bool {
	for _, s := range selected {
		if s.ID == item.ID {
			return true
		}
	}

	limits, ok := LimitsFor(planLimits, foodType, ratePlan)
	if !ok {
		return true
	}
	limit, ok := limits[item.CategoryName]
	if !ok {
		return true
	}

	return CategoryCount(selected, item.CategoryName) < limit
}
