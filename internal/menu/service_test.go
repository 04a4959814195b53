package menu

import (
	"context"
	"errors"
	"testing"
)

func seededService(t *testing.T) (*Service, *InMemoryRepository) {
	t.Helper()

	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	if _, err := service.CreateCategory(ctx, "Starters"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateCategory(ctx, "Main Course"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return service, repo
}

func TestCreateItemResolvesCategory(t *testing.T) {
	service, _ := seededService(t)

	item, err := service.CreateItem(context.Background(), "Paneer Tikka", "Starters", "Veg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.CategoryName != "Starters" || item.CategoryID == "" {
		t.Errorf("expected structured category reference, got %+v", item)
	}
}

func TestCreateItemUnknownCategory(t *testing.T) {
	service, _ := seededService(t)

	_, err := service.CreateItem(context.Background(), "Sushi", "Japanese", "Non-Veg")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestItemsByFoodTypeGroupsByCategory(t *testing.T) {
	service, _ := seededService(t)
	ctx := context.Background()

	mustCreate := func(name, category, foodType string) {
		t.Helper()
		if _, err := service.CreateItem(ctx, name, category, foodType); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	mustCreate("Paneer Tikka", "Starters", "Veg")
	mustCreate("Spring Roll", "Starters", "Veg")
	mustCreate("Dal Makhani", "Main Course", "Veg")
	mustCreate("Chicken Tikka", "Starters", "Non-Veg")

	grouped, err := service.ItemsByFoodType(ctx, "Veg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(grouped["Starters"]) != 2 {
		t.Errorf("expected 2 veg starters, got %d", len(grouped["Starters"]))
	}
	if len(grouped["Main Course"]) != 1 {
		t.Errorf("expected 1 veg main, got %d", len(grouped["Main Course"]))
	}
	for _, item := range grouped["Starters"] {
		if item.FoodType != "Veg" {
			t.Errorf("non-veg item leaked into veg grouping: %+v", item)
		}
	}
}

func TestFormattedPlanLimits(t *testing.T) {
	service, repo := seededService(t)
	repo.SetPlanLimits(vegGoldLimits())

	formatted, err := service.FormattedPlanLimits(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	limits, ok := formatted["Veg-Gold"]
	if !ok {
		t.Fatalf("expected Veg-Gold key, got %v", formatted)
	}
	if limits["Starters"] != 2 {
		t.Errorf("expected Starters cap 2, got %d", limits["Starters"])
	}
}

func TestCheckSelectionEnforcesCap(t *testing.T) {
	service, repo := seededService(t)
	repo.SetPlanLimits(vegGoldLimits())
	ctx := context.Background()

	first, _ := service.CreateItem(ctx, "Paneer Tikka", "Starters", "Veg")
	second, _ := service.CreateItem(ctx, "Spring Roll", "Starters", "Veg")
	third, _ := service.CreateItem(ctx, "Hara Kebab", "Starters", "Veg")

	allowed, err := service.CheckSelection(ctx, third.ID, []string{first.ID, second.ID}, "Veg", "Gold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Errorf("expected third starter rejected at cap 2")
	}

	// Deselecting one of the two is always allowed.
	allowed, err = service.CheckSelection(ctx, first.ID, []string{first.ID, second.ID}, "Veg", "Gold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Errorf("expected toggle-off to be allowed")
	}
}
