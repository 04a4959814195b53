package cash

import "time"

// Transaction directions. KEEP leaves money at the reception drawer,
// SENT moves it to the back office.
const (
	TypeKeep = "KEEP"
	TypeSent = "SENT"
)

type Transaction struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is the reception drawer position.
// CashInReception = Σ(KEEP) − Σ(SENT).
type Summary struct {
	CashInReception   float64 `json:"cash_in_reception"`
	TotalReceived     float64 `json:"total_received"`
	TotalSentToOffice float64 `json:"total_sent_to_office"`
}
