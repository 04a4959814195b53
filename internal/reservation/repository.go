package reservation

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("reservation not found")

// Repository defines all database operations for reservations.
type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	Update(ctx context.Context, res *Reservation) error
	List(ctx context.Context) ([]Reservation, error)
}
