package room

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rm *Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, number, category, rate, status)
		VALUES ($1, $2, $3, $4, $5)
	`, rm.ID, rm.Number, rm.Category, rm.Rate, rm.Status)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, category, rate, status
		FROM rooms
		ORDER BY number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Category, &rm.Rate, &rm.Status); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE rooms SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
