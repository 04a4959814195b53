package db

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'Staff',
			department VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	addDepartmentColumnSQL := `
		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS department VARCHAR(100) NOT NULL DEFAULT ''
	`
	if _, err := db.Exec(ctx, addDepartmentColumnSQL); err != nil {
		log.Println("Note: department column may already exist")
	}

	// -------------------------------
	// BANQUET BOOKINGS
	// -------------------------------
	bookingsSQL := `
		CREATE TABLE IF NOT EXISTS banquet_bookings (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			number VARCHAR(20) NOT NULL,
			email VARCHAR(255),
			start_date VARCHAR(20) NOT NULL,
			pax INT NOT NULL,
			rate_plan VARCHAR(20) NOT NULL,
			food_type VARCHAR(20) NOT NULL,
			gst_percent DOUBLE PRECISION,
			discount DOUBLE PRECISION NOT NULL DEFAULT 0,
			advance DOUBLE PRECISION NOT NULL DEFAULT 0,
			rate_per_pax DOUBLE PRECISION NOT NULL DEFAULT 0,
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			balance DOUBLE PRECISION NOT NULL DEFAULT 0,
			booking_status VARCHAR(20) NOT NULL,
			status_history JSONB NOT NULL DEFAULT '[]',
			categorized_menu JSONB NOT NULL DEFAULT '{}',
			staff_edit_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, bookingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BANQUET CATEGORIES + MENU ITEMS
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS banquet_categories (
			id UUID PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category_id UUID NOT NULL REFERENCES banquet_categories(id),
			food_type VARCHAR(20) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PLAN LIMITS
	// -------------------------------
	planLimitsSQL := `
		CREATE TABLE IF NOT EXISTS plan_limits (
			food_type VARCHAR(20) NOT NULL,
			rate_plan VARCHAR(20) NOT NULL,
			limits JSONB NOT NULL,
			PRIMARY KEY (food_type, rate_plan)
		)
	`
	if _, err := db.Exec(ctx, planLimitsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CASH TRANSACTIONS
	// -------------------------------
	cashSQL := `
		CREATE TABLE IF NOT EXISTS cash_transactions (
			id UUID PRIMARY KEY,
			amount DOUBLE PRECISION NOT NULL,
			type VARCHAR(10) NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, cashSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESERVATIONS + ROOMS
	// -------------------------------
	roomsSQL := `
		CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY,
			number VARCHAR(20) UNIQUE NOT NULL,
			category VARCHAR(50) NOT NULL,
			rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'Available'
		)
	`
	if _, err := db.Exec(ctx, roomsSQL); err != nil {
		return err
	}

	reservationsSQL := `
		CREATE TABLE IF NOT EXISTS reservations (
			id UUID PRIMARY KEY,
			grc_no VARCHAR(20) NOT NULL,
			guest_name VARCHAR(255) NOT NULL,
			number VARCHAR(20) NOT NULL,
			room_id UUID REFERENCES rooms(id),
			check_in VARCHAR(20) NOT NULL,
			check_out VARCHAR(20) NOT NULL,
			advance DOUBLE PRECISION NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, reservationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SERVICE ORDERS (laundry / restaurant / pantry)
	// -------------------------------
	serviceOrdersSQL := `
		CREATE TABLE IF NOT EXISTS service_orders (
			id UUID PRIMARY KEY,
			department VARCHAR(50) NOT NULL,
			description TEXT,
			amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, serviceOrdersSQL); err != nil {
		return err
	}

	return seedDefaults(db)
}

// seedDefaults inserts the default banquet categories and plan limits.
// Reruns are no-ops via ON CONFLICT DO NOTHING.
func seedDefaults(db *pgxpool.Pool) error {
	ctx := context.Background()

	for _, name := range []string{"Starters", "Main Course", "Desserts", "Beverages"} {
		_, err := db.Exec(ctx, `
			INSERT INTO banquet_categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, uuid.New().String(), name)
		if err != nil {
			return err
		}
	}

	type seedLimit struct {
		foodType string
		ratePlan string
		limits   map[string]int
	}

	seeds := []seedLimit{
		{"Veg", "Silver", map[string]int{"Starters": 2, "Main Course": 3, "Desserts": 1, "Beverages": 1}},
		{"Veg", "Gold", map[string]int{"Starters": 3, "Main Course": 4, "Desserts": 2, "Beverages": 2}},
		{"Veg", "Platinum", map[string]int{"Starters": 4, "Main Course": 5, "Desserts": 3, "Beverages": 3}},
		{"Non-Veg", "Silver", map[string]int{"Starters": 2, "Main Course": 3, "Desserts": 1, "Beverages": 1}},
		{"Non-Veg", "Gold", map[string]int{"Starters": 3, "Main Course": 4, "Desserts": 2, "Beverages": 2}},
		{"Non-Veg", "Platinum", map[string]int{"Starters": 4, "Main Course": 5, "Desserts": 3, "Beverages": 3}},
	}

	for _, s := range seeds {
		raw, err := json.Marshal(s.limits)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `
			INSERT INTO plan_limits (food_type, rate_plan, limits)
			VALUES ($1, $2, $3)
			ON CONFLICT (food_type, rate_plan) DO NOTHING
		`, s.foodType, s.ratePlan, raw)
		if err != nil {
			return err
		}
	}

	return nil
}
