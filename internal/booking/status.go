package booking

import "time"

// StatusFlags are OR-accumulated over the whole status history: once a
// booking has passed through a state, the flag stays true even if the
// current status has since moved on.
type StatusFlags struct {
	IsEnquiry   bool `json:"is_enquiry"`
	IsTentative bool `json:"is_tentative"`
	IsConfirmed bool `json:"is_confirmed"`
}

// NewHistory seeds the history of a freshly created booking.
func NewHistory(now time.Time) []StatusEntry {
	return []StatusEntry{{Status: StatusEnquiry, ChangedAt: now}}
}

// CurrentStatus is the trailing history entry; an empty history reads
// as Enquiry.
func CurrentStatus(history []StatusEntry) string {
	if len(history) == 0 {
		return StatusEnquiry
	}
	return history[len(history)-1].Status
}

// ApplyAdvance transitions the booking to Confirmed once a positive
// advance is recorded. Idempotent: a trailing Confirmed entry is never
// duplicated.
func ApplyAdvance(history []StatusEntry, advance float64, now time.Time) []StatusEntry {
	if advance <= 0 {
		return history
	}
	return appendStatus(history, StatusConfirmed, now)
}

// ApplyEdit marks a booking Tentative when any editable field changed,
// unless it is already Confirmed.
func ApplyEdit(history []StatusEntry, now time.Time) []StatusEntry {
	if CurrentStatus(history) == StatusConfirmed {
		return history
	}
	return appendStatus(history, StatusTentative, now)
}

// appendStatus appends only when the trailing entry differs.
func appendStatus(history []StatusEntry, status string, now time.Time) []StatusEntry {
	if len(history) > 0 && history[len(history)-1].Status == status {
		return history
	}
	return append(history, StatusEntry{Status: status, ChangedAt: now})
}

// FoldFlags recomputes the derived booleans by folding over the ordered
// history each time they are needed. Flags only ever turn on.
func FoldFlags(history []StatusEntry) StatusFlags {
	var flags StatusFlags
	for _, entry := range history {
		switch entry.Status {
		case StatusEnquiry:
			flags.IsEnquiry = true
		case StatusTentative:
			flags.IsTentative = true
		case StatusConfirmed:
			flags.IsConfirmed = true
		}
	}
	return flags
}
