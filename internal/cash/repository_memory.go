package cash

import "context"

// InMemoryRepository backs the service in tests.
type InMemoryRepository struct {
	transactions []Transaction
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Add(ctx context.Context, tx *Transaction) error {
	r.transactions = append(r.transactions, *tx)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Transaction, error) {
	out := make([]Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

func (r *InMemoryRepository) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	for _, tx := range r.transactions {
		switch tx.Type {
		case TypeKeep:
			summary.TotalReceived += tx.Amount
		case TypeSent:
			summary.TotalSentToOffice += tx.Amount
		}
	}
	summary.CashInReception = summary.TotalReceived - summary.TotalSentToOffice
	return summary, nil
}
