package menu

import "context"

// InMemoryRepository backs the service in tests.
type InMemoryRepository struct {
	items      map[string]*Item
	categories map[string]*Category
	planLimits []PlanLimit
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:      make(map[string]*Item),
		categories: make(map[string]*Category),
	}
}

func (r *InMemoryRepository) CreateItem(ctx context.Context, item *Item) error {
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *InMemoryRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	stored, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	found := *stored
	return &found, nil
}

func (r *InMemoryRepository) ListItems(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *InMemoryRepository) ListItemsByFoodType(ctx context.Context, foodType string) ([]Item, error) {
	var out []Item
	for _, item := range r.items {
		if item.FoodType == foodType {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) CreateCategory(ctx context.Context, category *Category) error {
	stored := *category
	r.categories[category.Name] = &stored
	return nil
}

func (r *InMemoryRepository) GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	stored, ok := r.categories[name]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	found := *stored
	return &found, nil
}

func (r *InMemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, 0, len(r.categories))
	for _, category := range r.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (r *InMemoryRepository) ListPlanLimits(ctx context.Context) ([]PlanLimit, error) {
	return r.planLimits, nil
}

// SetPlanLimits seeds the limit table for tests.
func (r *InMemoryRepository) SetPlanLimits(planLimits []PlanLimit) {
	r.planLimits = planLimits
}
