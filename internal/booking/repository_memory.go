package booking

import "context"

// InMemoryRepository backs the service in tests.
type InMemoryRepository struct {
	bookings map[string]*Booking
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, b *Booking) error {
	r.bookings[b.ID] = clone(b)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	stored, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(stored), nil
}

func (r *InMemoryRepository) Update(ctx context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	r.bookings[b.ID] = clone(b)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Booking, error) {
	out := make([]*Booking, 0, len(r.bookings))
	for _, stored := range r.bookings {
		out = append(out, clone(stored))
	}
	return out, nil
}

// clone detaches history and menu so callers cannot alias stored state.
func clone(b *Booking) *Booking {
	copied := *b
	if b.StatusHistory != nil {
		copied.StatusHistory = append([]StatusEntry(nil), b.StatusHistory...)
	}
	if b.CategorizedMenu != nil {
		copied.CategorizedMenu = make(map[string][]string, len(b.CategorizedMenu))
		for category, items := range b.CategorizedMenu {
			copied.CategorizedMenu[category] = append([]string(nil), items...)
		}
	}
	if b.GSTPercent != nil {
		v := *b.GSTPercent
		copied.GSTPercent = &v
	}
	return &copied
}
