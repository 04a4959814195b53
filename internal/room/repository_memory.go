package room

import "context"

// InMemoryRepository backs the handler in tests.
type InMemoryRepository struct {
	rooms map[string]*Room
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rooms: make(map[string]*Room)}
}

func (r *InMemoryRepository) Create(ctx context.Context, rm *Room) error {
	stored := *rm
	r.rooms[rm.ID] = &stored
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Room, error) {
	out := make([]Room, 0, len(r.rooms))
	for _, stored := range r.rooms {
		out = append(out, *stored)
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	stored, ok := r.rooms[id]
	if !ok {
		return ErrNotFound
	}
	stored.Status = status
	return nil
}
