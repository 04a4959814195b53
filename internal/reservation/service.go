package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFields    = errors.New("guest name, number and check-in date are required")
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create registers a reservation. A positive advance confirms it right
// away, otherwise it stays Tentative.
func (s *Service) Create(ctx context.Context, res *Reservation) (*Reservation, error) {
	if strings.TrimSpace(res.GuestName) == "" ||
		strings.TrimSpace(res.Number) == "" ||
		strings.TrimSpace(res.CheckIn) == "" {
		return nil, ErrMissingFields
	}

	now := s.now()
	id := uuid.New().String()

	res.ID = id
	if res.GRCNo == "" {
		res.GRCNo = "GRC-" + strings.ToUpper(id[:8])
	}
	if res.Advance > 0 {
		res.Status = StatusConfirmed
	} else {
		res.Status = StatusTentative
	}
	res.CreatedAt = now
	res.UpdatedAt = now

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel moves a reservation to Cancelled. Cancelling twice is an error.
func (s *Service) Cancel(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	res.Status = StatusCancelled
	res.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Reservation, error) {
	return s.repo.List(ctx)
}
