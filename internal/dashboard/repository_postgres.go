package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOrderRepository reads department service orders.
type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) ListByDepartment(ctx context.Context, department string) ([]ServiceOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, department, description, amount, status, created_at
		FROM service_orders
		WHERE department = $1
		ORDER BY created_at DESC
	`, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []ServiceOrder
	for rows.Next() {
		var order ServiceOrder
		if err := rows.Scan(
			&order.ID, &order.Department, &order.Description,
			&order.Amount, &order.Status, &order.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
