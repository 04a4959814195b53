package menu

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Items
// --------------------------------------------------

func (r *PostgresRepository) CreateItem(ctx context.Context, item *Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, category_id, food_type)
		VALUES ($1, $2, $3, $4)
	`, item.ID, item.Name, item.CategoryID, item.FoodType)
	return err
}

func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	err := r.db.QueryRow(ctx, `
		SELECT mi.id, mi.name, mi.category_id, c.name, mi.food_type
		FROM menu_items mi
		JOIN banquet_categories c ON c.id = mi.category_id
		WHERE mi.id = $1
	`, id).Scan(&item.ID, &item.Name, &item.CategoryID, &item.CategoryName, &item.FoodType)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListItems(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `
		SELECT mi.id, mi.name, mi.category_id, c.name, mi.food_type
		FROM menu_items mi
		JOIN banquet_categories c ON c.id = mi.category_id
		ORDER BY c.name, mi.name
	`)
}

func (r *PostgresRepository) ListItemsByFoodType(ctx context.Context, foodType string) ([]Item, error) {
	return r.queryItems(ctx, `
		SELECT mi.id, mi.name, mi.category_id, c.name, mi.food_type
		FROM menu_items mi
		JOIN banquet_categories c ON c.id = mi.category_id
		WHERE mi.food_type = $1
		ORDER BY c.name, mi.name
	`, foodType)
}

func (r *PostgresRepository) queryItems(ctx context.Context, sql string, args ...any) ([]Item, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.CategoryID, &item.CategoryName, &item.FoodType); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO banquet_categories (id, name)
		VALUES ($1, $2)
	`, category.ID, category.Name)
	return err
}

func (r *PostgresRepository) GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	var category Category
	err := r.db.QueryRow(ctx, `
		SELECT id, name FROM banquet_categories WHERE name = $1
	`, name).Scan(&category.ID, &category.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name FROM banquet_categories ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// --------------------------------------------------
// Plan limits
// --------------------------------------------------

func (r *PostgresRepository) ListPlanLimits(ctx context.Context) ([]PlanLimit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT food_type, rate_plan, limits
		FROM plan_limits
		ORDER BY food_type, rate_plan
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var planLimits []PlanLimit
	for rows.Next() {
		var (
			pl  PlanLimit
			raw []byte
		)
		if err := rows.Scan(&pl.FoodType, &pl.RatePlan, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &pl.Limits); err != nil {
			return nil, err
		}
		planLimits = append(planLimits, pl)
	}
	return planLimits, rows.Err()
}
