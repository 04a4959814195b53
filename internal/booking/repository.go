package booking

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("booking not found")

// Repository defines all database operations for banquet bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	List(ctx context.Context) ([]*Booking, error)
}
