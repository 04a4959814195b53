package dashboard

import (
	"context"
	"log"
	"sync"

	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
	"github.com/priyansh911911/ashokacrm-sub000/internal/reservation"
	"github.com/priyansh911911/ashokacrm-sub000/internal/room"
)

// Read contracts for the dashboard's sources. The domain repositories
// satisfy these as-is.
type (
	RoomSource interface {
		List(ctx context.Context) ([]room.Room, error)
	}
	ReservationSource interface {
		List(ctx context.Context) ([]reservation.Reservation, error)
	}
	BanquetSource interface {
		List(ctx context.Context) ([]*booking.Booking, error)
	}
	OrderSource interface {
		ListByDepartment(ctx context.Context, department string) ([]ServiceOrder, error)
	}
)

type Service struct {
	rooms        RoomSource
	reservations ReservationSource
	banquet      BanquetSource
	orders       OrderSource
}

func NewService(rooms RoomSource, reservations ReservationSource, banquet BanquetSource, orders OrderSource) *Service {
	return &Service{
		rooms:        rooms,
		reservations: reservations,
		banquet:      banquet,
		orders:       orders,
	}
}

// Summary fetches every dashboard source concurrently and joins them
// all-settled: a failed source degrades to an empty slice and the rest
// of the dashboard still renders. No error ever escapes.
func (s *Service) Summary(ctx context.Context) *Summary {
	summary := &Summary{}
	var wg sync.WaitGroup

	wg.Add(6)
	go func() {
		defer wg.Done()
		rooms, err := s.rooms.List(ctx)
		if err != nil {
			log.Printf("dashboard: rooms fetch failed: %v", err)
			return
		}
		summary.Rooms = rooms
	}()
	go func() {
		defer wg.Done()
		reservations, err := s.reservations.List(ctx)
		if err != nil {
			log.Printf("dashboard: reservations fetch failed: %v", err)
			return
		}
		summary.Bookings = reservations
		summary.ServiceData.Reservations = reservations
	}()
	go func() {
		defer wg.Done()
		banquet, err := s.banquet.List(ctx)
		if err != nil {
			log.Printf("dashboard: banquet fetch failed: %v", err)
			return
		}
		summary.ServiceData.Banquet = banquet
	}()
	go func() {
		defer wg.Done()
		summary.ServiceData.Laundry = s.fetchOrders(ctx, DeptLaundry)
	}()
	go func() {
		defer wg.Done()
		summary.ServiceData.Restaurant = s.fetchOrders(ctx, DeptRestaurant)
	}()
	go func() {
		defer wg.Done()
		summary.ServiceData.Pantry = s.fetchOrders(ctx, DeptPantry)
	}()
	wg.Wait()

	// Failed or empty sources render as empty lists, not nulls.
	if summary.Rooms == nil {
		summary.Rooms = []room.Room{}
	}
	if summary.Bookings == nil {
		summary.Bookings = []reservation.Reservation{}
	}
	if summary.ServiceData.Reservations == nil {
		summary.ServiceData.Reservations = []reservation.Reservation{}
	}
	if summary.ServiceData.Banquet == nil {
		summary.ServiceData.Banquet = []*booking.Booking{}
	}

	return summary
}

func (s *Service) fetchOrders(ctx context.Context, department string) []ServiceOrder {
	orders, err := s.orders.ListByDepartment(ctx, department)
	if err != nil {
		log.Printf("dashboard: %s orders fetch failed: %v", department, err)
		return []ServiceOrder{}
	}
	if orders == nil {
		orders = []ServiceOrder{}
	}
	return orders
}
