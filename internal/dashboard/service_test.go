package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
	"github.com/priyansh911911/ashokacrm-sub000/internal/reservation"
	"github.com/priyansh911911/ashokacrm-sub000/internal/room"
)

// --------------------------------------------------
// Fake sources
// --------------------------------------------------

type fakeRooms struct {
	rooms []room.Room
	err   error
}

func (f *fakeRooms) List(ctx context.Context) ([]room.Room, error) {
	return f.rooms, f.err
}

type fakeReservations struct {
	reservations []reservation.Reservation
	err          error
}

func (f *fakeReservations) List(ctx context.Context) ([]reservation.Reservation, error) {
	return f.reservations, f.err
}

type fakeBanquet struct {
	bookings []*booking.Booking
	err      error
}

func (f *fakeBanquet) List(ctx context.Context) ([]*booking.Booking, error) {
	return f.bookings, f.err
}

type fakeOrders struct {
	orders map[string][]ServiceOrder
	err    error
}

func (f *fakeOrders) ListByDepartment(ctx context.Context, department string) ([]ServiceOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders[department], nil
}

func order(department string) ServiceOrder {
	return ServiceOrder{
		ID:         department + "-1",
		Department: department,
		Status:     "open",
		CreatedAt:  time.Now(),
	}
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestSummaryJoinsAllSources(t *testing.T) {
	service := NewService(
		&fakeRooms{rooms: []room.Room{{ID: "r1", Number: "101"}}},
		&fakeReservations{reservations: []reservation.Reservation{{ID: "res1"}}},
		&fakeBanquet{bookings: []*booking.Booking{{ID: "b1"}}},
		&fakeOrders{orders: map[string][]ServiceOrder{
			DeptLaundry:    {order(DeptLaundry)},
			DeptRestaurant: {order(DeptRestaurant)},
			DeptPantry:     {order(DeptPantry)},
		}},
	)

	summary := service.Summary(context.Background())

	if len(summary.Rooms) != 1 {
		t.Errorf("expected 1 room, got %d", len(summary.Rooms))
	}
	if len(summary.Bookings) != 1 || len(summary.ServiceData.Reservations) != 1 {
		t.Errorf("expected reservations in both views, got %+v", summary)
	}
	if len(summary.ServiceData.Banquet) != 1 {
		t.Errorf("expected 1 banquet booking, got %d", len(summary.ServiceData.Banquet))
	}
	if len(summary.ServiceData.Laundry) != 1 ||
		len(summary.ServiceData.Restaurant) != 1 ||
		len(summary.ServiceData.Pantry) != 1 {
		t.Errorf("expected one order per department, got %+v", summary.ServiceData)
	}
}

// A failed banquet source leaves the rest of the dashboard intact:
// banquet arrives as an empty list and no error escapes.
func TestSummaryToleratesBanquetFailure(t *testing.T) {
	service := NewService(
		&fakeRooms{rooms: []room.Room{{ID: "r1", Number: "101"}}},
		&fakeReservations{reservations: []reservation.Reservation{{ID: "res1"}}},
		&fakeBanquet{err: errors.New("banquet store down")},
		&fakeOrders{orders: map[string][]ServiceOrder{
			DeptLaundry:    {order(DeptLaundry)},
			DeptRestaurant: {order(DeptRestaurant)},
			DeptPantry:     {order(DeptPantry)},
		}},
	)

	summary := service.Summary(context.Background())

	if summary.ServiceData.Banquet == nil || len(summary.ServiceData.Banquet) != 0 {
		t.Errorf("expected empty banquet list, got %v", summary.ServiceData.Banquet)
	}
	if len(summary.ServiceData.Laundry) != 1 ||
		len(summary.ServiceData.Restaurant) != 1 ||
		len(summary.ServiceData.Pantry) != 1 ||
		len(summary.ServiceData.Reservations) != 1 {
		t.Errorf("expected surviving sources populated, got %+v", summary.ServiceData)
	}
	if len(summary.Rooms) != 1 {
		t.Errorf("expected rooms populated, got %d", len(summary.Rooms))
	}
}

func TestSummaryAllSourcesFailing(t *testing.T) {
	boom := errors.New("db down")
	service := NewService(
		&fakeRooms{err: boom},
		&fakeReservations{err: boom},
		&fakeBanquet{err: boom},
		&fakeOrders{err: boom},
	)

	summary := service.Summary(context.Background())

	if summary.Rooms == nil || summary.Bookings == nil ||
		summary.ServiceData.Banquet == nil || summary.ServiceData.Reservations == nil ||
		summary.ServiceData.Laundry == nil || summary.ServiceData.Restaurant == nil ||
		summary.ServiceData.Pantry == nil {
		t.Errorf("expected every source to degrade to an empty list, got %+v", summary)
	}
}
