package dashboard

import (
	"time"

	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
	"github.com/priyansh911911/ashokacrm-sub000/internal/reservation"
	"github.com/priyansh911911/ashokacrm-sub000/internal/room"
)

// Departments whose open orders feed the dashboard.
const (
	DeptLaundry    = "laundry"
	DeptRestaurant = "restaurant"
	DeptPantry     = "pantry"
)

// ServiceOrder is one department order line (laundry, restaurant or
// pantry) shown on the dashboard.
type ServiceOrder struct {
	ID          string    `json:"id"`
	Department  string    `json:"department"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceData groups the per-department feeds. Sources that failed to
// load arrive as empty slices, never as an error.
type ServiceData struct {
	Laundry      []ServiceOrder            `json:"laundry"`
	Restaurant   []ServiceOrder            `json:"restaurant"`
	Pantry       []ServiceOrder            `json:"pantry"`
	Reservations []reservation.Reservation `json:"reservations"`
	Banquet      []*booking.Booking        `json:"banquet"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Rooms       []room.Room               `json:"rooms"`
	Bookings    []reservation.Reservation `json:"bookings"`
	ServiceData ServiceData               `json:"service_data"`
}
