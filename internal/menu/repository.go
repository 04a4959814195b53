package menu

import (
	"context"
	"errors"
)

var (
	ErrItemNotFound     = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Repository defines all database operations for the menu catalog.
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id string) (*Item, error)
	ListItems(ctx context.Context) ([]Item, error)
	ListItemsByFoodType(ctx context.Context, foodType string) ([]Item, error)

	CreateCategory(ctx context.Context, category *Category) error
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)

	ListPlanLimits(ctx context.Context) ([]PlanLimit, error)
}
