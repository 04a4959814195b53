package reservation

import "time"

// Reservation statuses. Unlike banquet bookings, a reservation can be
// cancelled.
const (
	StatusTentative = "Tentative"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Reservation is a room reservation. GRCNo is the Guest Registration
// Card number shown on the desk screens.
type Reservation struct {
	ID        string    `json:"id"`
	GRCNo     string    `json:"grc_no"`
	GuestName string    `json:"guest_name"`
	Number    string    `json:"number"`
	RoomID    string    `json:"room_id,omitempty"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Advance   float64   `json:"advance"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
