package cash

import "context"

// Repository defines all database operations for the cash ledger.
type Repository interface {
	Add(ctx context.Context, tx *Transaction) error
	List(ctx context.Context) ([]Transaction, error)
	Summary(ctx context.Context) (Summary, error)
}
