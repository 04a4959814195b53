package booking

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
// CREATE
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	history, menu, err := marshalJSONFields(b)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO banquet_bookings (
			id, name, number, email, start_date, pax,
			rate_plan, food_type, gst_percent, discount, advance,
			rate_per_pax, total, balance,
			booking_status, status_history, categorized_menu,
			staff_edit_count, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14,
			$15, $16, $17,
			$18, $19, $20
		)
	`,
		b.ID, b.Name, b.Number, b.Email, b.StartDate, b.Pax,
		b.RatePlan, b.FoodType, b.GSTPercent, b.Discount, b.Advance,
		b.RatePerPax, b.Total, b.Balance,
		b.BookingStatus, history, menu,
		b.StaffEditCount, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

// --------------------------------------------------
// GET BY ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			id, name, number, email, start_date, pax,
			rate_plan, food_type, gst_percent, discount, advance,
			rate_per_pax, total, balance,
			booking_status, status_history, categorized_menu,
			staff_edit_count, created_at, updated_at
		FROM banquet_bookings
		WHERE id = $1
	`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// --------------------------------------------------
// UPDATE
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, b *Booking) error {
	history, menu, err := marshalJSONFields(b)
	if err != nil {
		return err
	}

	cmd, err := r.db.Exec(ctx, `
		UPDATE banquet_bookings
		SET name = $2,
		    number = $3,
		    email = $4,
		    start_date = $5,
		    pax = $6,
		    rate_plan = $7,
		    food_type = $8,
		    gst_percent = $9,
		    discount = $10,
		    advance = $11,
		    rate_per_pax = $12,
		    total = $13,
		    balance = $14,
		    booking_status = $15,
		    status_history = $16,
		    categorized_menu = $17,
		    staff_edit_count = $18,
		    updated_at = $19
		WHERE id = $1
	`,
		b.ID, b.Name, b.Number, b.Email, b.StartDate, b.Pax,
		b.RatePlan, b.FoodType, b.GSTPercent, b.Discount, b.Advance,
		b.RatePerPax, b.Total, b.Balance,
		b.BookingStatus, history, menu,
		b.StaffEditCount, b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// LIST
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id, name, number, email, start_date, pax,
			rate_plan, food_type, gst_percent, discount, advance,
			rate_per_pax, total, balance,
			booking_status, status_history, categorized_menu,
			staff_edit_count, created_at, updated_at
		FROM banquet_bookings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// --------------------------------------------------
// Row helpers
// --------------------------------------------------

func marshalJSONFields(b *Booking) (history, menu []byte, err error) {
	history, err = json.Marshal(b.StatusHistory)
	if err != nil {
		return nil, nil, err
	}
	if b.CategorizedMenu == nil {
		menu = []byte("{}")
		return history, menu, nil
	}
	menu, err = json.Marshal(b.CategorizedMenu)
	if err != nil {
		return nil, nil, err
	}
	return history, menu, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b       Booking
		history []byte
		menu    []byte
	)

	if err := row.Scan(
		&b.ID, &b.Name, &b.Number, &b.Email, &b.StartDate, &b.Pax,
		&b.RatePlan, &b.FoodType, &b.GSTPercent, &b.Discount, &b.Advance,
		&b.RatePerPax, &b.Total, &b.Balance,
		&b.BookingStatus, &history, &menu,
		&b.StaffEditCount, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &b.StatusHistory); err != nil {
			return nil, err
		}
	}
	if len(menu) > 0 {
		if err := json.Unmarshal(menu, &b.CategorizedMenu); err != nil {
			return nil, err
		}
	}
	return &b, nil
}
