package cash

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

func (r *PostgresRepository) Add(ctx context.Context, tx *Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cash_transactions (id, amount, type, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, tx.ID, tx.Amount, tx.Type, tx.Description, tx.CreatedAt)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, amount, type, description, created_at
		FROM cash_transactions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(&tx.ID, &tx.Amount, &tx.Type, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (r *PostgresRepository) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'KEEP'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'SENT'), 0)
		FROM cash_transactions
	`).Scan(&summary.TotalReceived, &summary.TotalSentToOffice)
	if err != nil {
		return Summary{}, err
	}
	summary.CashInReception = summary.TotalReceived - summary.TotalSentToOffice
	return summary, nil
}
