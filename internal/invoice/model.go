package invoice

import "time"

// LineItem is one priced row on the invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice is the checkout document rendered for a banquet booking.
type Invoice struct {
	InvoiceNo   string              `json:"invoice_no"`
	BookingID   string              `json:"booking_id"`
	GuestName   string              `json:"guest_name"`
	Number      string              `json:"number"`
	EventDate   string              `json:"event_date"`
	FoodType    string              `json:"food_type"`
	RatePlan    string              `json:"rate_plan"`
	Items       []LineItem          `json:"items"`
	Menu        map[string][]string `json:"menu,omitempty"`
	Discount    float64             `json:"discount"`
	GSTPercent  *float64            `json:"gst_percent,omitempty"`
	Total       float64             `json:"total"`
	Advance     float64             `json:"advance"`
	BalanceDue  float64             `json:"balance_due"`
	GeneratedAt time.Time           `json:"generated_at"`
	ArchiveURL  string              `json:"archive_url,omitempty"`
}
