package room

// Room statuses as the desk screens show them.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

type Room struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	Category string  `json:"category"`
	Rate     float64 `json:"rate"`
	Status   string  `json:"status"`
}
