package reservation

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, res *Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (
			id, grc_no, guest_name, number, room_id,
			check_in, check_out, advance, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)
	`,
		res.ID, res.GRCNo, res.GuestName, res.Number, res.RoomID,
		res.CheckIn, res.CheckOut, res.Advance, res.Status,
		res.CreatedAt, res.UpdatedAt,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	var (
		res    Reservation
		roomID *string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, grc_no, guest_name, number, room_id,
		       check_in, check_out, advance, status,
		       created_at, updated_at
		FROM reservations
		WHERE id = $1
	`, id).Scan(
		&res.ID, &res.GRCNo, &res.GuestName, &res.Number, &roomID,
		&res.CheckIn, &res.CheckOut, &res.Advance, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if roomID != nil {
		res.RoomID = *roomID
	}
	return &res, nil
}

func (r *PostgresRepository) Update(ctx context.Context, res *Reservation) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET grc_no = $2,
		    guest_name = $3,
		    number = $4,
		    room_id = NULLIF($5, ''),
		    check_in = $6,
		    check_out = $7,
		    advance = $8,
		    status = $9,
		    updated_at = $10
		WHERE id = $1
	`,
		res.ID, res.GRCNo, res.GuestName, res.Number, res.RoomID,
		res.CheckIn, res.CheckOut, res.Advance, res.Status,
		res.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, grc_no, guest_name, number, room_id,
		       check_in, check_out, advance, status,
		       created_at, updated_at
		FROM reservations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var (
			res    Reservation
			roomID *string
		)
		if err := rows.Scan(
			&res.ID, &res.GRCNo, &res.GuestName, &res.Number, &roomID,
			&res.CheckIn, &res.CheckOut, &res.Advance, &res.Status,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if roomID != nil {
			res.RoomID = *roomID
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
