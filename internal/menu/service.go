package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Items
// --------------------------------------------------

func (s *Service) CreateItem(ctx context.Context, name, categoryName, foodType string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" || categoryName == "" || foodType == "" {
		return nil, errors.New("name, category and food type are required")
	}

	category, err := s.repo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	item := &Item{
		ID:           uuid.New().String(),
		Name:         name,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		FoodType:     foodType,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	return s.repo.ListItems(ctx)
}

// ItemsByFoodType returns the items of one food type grouped by
// category name, the shape the booking screens render.
func (s *Service) ItemsByFoodType(ctx context.Context, foodType string) (map[string][]Item, error) {
	items, err := s.repo.ListItemsByFoodType(ctx, foodType)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Item)
	for _, item := range items {
		grouped[item.CategoryName] = append(grouped[item.CategoryName], item)
	}
	return grouped, nil
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (s *Service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category := &Category{ID: uuid.New().String(), Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// --------------------------------------------------
// Plan limits
// --------------------------------------------------

func (s *Service) PlanLimits(ctx context.Context) ([]PlanLimit, error) {
	return s.repo.ListPlanLimits(ctx)
}

// FormattedPlanLimits flattens the limit table into a
// "FoodType-RatePlan" keyed map for the picker screens.
func (s *Service) FormattedPlanLimits(ctx context.Context) (map[string]map[string]int, error) {
	planLimits, err := s.repo.ListPlanLimits(ctx)
	if err != nil {
		return nil, err
	}

	formatted := make(map[string]map[string]int, len(planLimits))
	for _, pl := range planLimits {
		formatted[fmt.Sprintf("%s-%s", pl.FoodType, pl.RatePlan)] = pl.Limits
	}
	return formatted, nil
}

// --------------------------------------------------
// Selection check
// --------------------------------------------------

// CheckSelection resolves the candidate item and the already selected
// items, then applies the plan-limit rule.
func (s *Service) CheckSelection(ctx context.Context, itemID string, selectedIDs []string, foodType, ratePlan string) (bool, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return false, err
	}

	selected := make([]Item, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		sel, err := s.repo.GetItem(ctx, id)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				continue
			}
			return false, err
		}
		selected = append(selected, *sel)
	}

	planLimits, err := s.repo.ListPlanLimits(ctx)
	if err != nil {
		// Degrade to unconstrained rather than blocking the picker.
		planLimits = nil
	}

	return AllowSelection(*item, selected, planLimits, foodType, ratePlan), nil
}
