package booking

import "time"

// Pricing axes.
const (
	FoodTypeVeg    = "Veg"
	FoodTypeNonVeg = "Non-Veg"
)

const (
	PlanSilver   = "Silver"
	PlanGold     = "Gold"
	PlanPlatinum = "Platinum"
)

// Booking statuses. Cancelled is only reached through the reservation
// flow; banquet bookings move between the first three.
const (
	StatusEnquiry   = "Enquiry"
	StatusTentative = "Tentative"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// StatusEntry is one append-only record of a status change.
type StatusEntry struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

// Booking is a banquet booking.
//
// GSTPercent is a pointer on purpose: an unset GST clears the computed
// totals instead of defaulting to zero.
type Booking struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Number          string              `json:"number"`
	Email           string              `json:"email,omitempty"`
	StartDate       string              `json:"start_date"`
	Pax             int                 `json:"pax"`
	RatePlan        string              `json:"rate_plan"`
	FoodType        string              `json:"food_type"`
	GSTPercent      *float64            `json:"gst_percent,omitempty"`
	Discount        float64             `json:"discount"`
	Advance         float64             `json:"advance"`
	RatePerPax      float64             `json:"rate_per_pax"`
	Total           float64             `json:"total"`
	Balance         float64             `json:"balance"`
	BookingStatus   string              `json:"booking_status"`
	StatusHistory   []StatusEntry       `json:"status_history"`
	CategorizedMenu map[string][]string `json:"categorized_menu,omitempty"`
	StaffEditCount  int                 `json:"staff_edit_count"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
