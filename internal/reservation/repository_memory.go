package reservation

import "context"

// InMemoryRepository backs the service in tests.
type InMemoryRepository struct {
	reservations map[string]*Reservation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		reservations: make(map[string]*Reservation),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, res *Reservation) error {
	stored := *res
	r.reservations[res.ID] = &stored
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	stored, ok := r.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *stored
	return &found, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, res *Reservation) error {
	if _, ok := r.reservations[res.ID]; !ok {
		return ErrNotFound
	}
	stored := *res
	r.reservations[res.ID] = &stored
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Reservation, error) {
	out := make([]Reservation, 0, len(r.reservations))
	for _, stored := range r.reservations {
		out = append(out, *stored)
	}
	return out, nil
}
