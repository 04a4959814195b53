package room

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("room not found")

// Repository defines all database operations for the room catalog.
type Repository interface {
	Create(ctx context.Context, rm *Room) error
	List(ctx context.Context) ([]Room, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
