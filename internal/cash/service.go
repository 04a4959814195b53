package cash

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidType   = errors.New("transaction type must be KEEP or SENT")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Add appends one transaction to the ledger. The ledger is append-only;
// the drawer position is always derived from the stored rows.
func (s *Service) Add(ctx context.Context, amount float64, txType, description string) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if txType != TypeKeep && txType != TypeSent {
		return nil, ErrInvalidType
	}

	tx := &Transaction{
		ID:          uuid.New().String(),
		Amount:      amount,
		Type:        txType,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Add(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) List(ctx context.Context) ([]Transaction, error) {
	return s.repo.List(ctx)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}
