package booking

import (
	"testing"
	"time"
)

func entry(status string) StatusEntry {
	return StatusEntry{Status: status, ChangedAt: time.Now()}
}

func TestNewHistorySeedsEnquiry(t *testing.T) {
	history := NewHistory(time.Now())

	if len(history) != 1 {
		t.Fatalf("expected single seed entry, got %d", len(history))
	}
	if history[0].Status != StatusEnquiry {
		t.Errorf("expected seed status Enquiry, got %s", history[0].Status)
	}
}

func TestApplyAdvanceConfirms(t *testing.T) {
	now := time.Now()
	history := []StatusEntry{entry(StatusEnquiry), entry(StatusTentative)}

	history = ApplyAdvance(history, 500, now)

	if CurrentStatus(history) != StatusConfirmed {
		t.Errorf("expected Confirmed, got %s", CurrentStatus(history))
	}
	if len(history) != 3 {
		t.Errorf("expected one appended entry, got %d entries", len(history))
	}
}

func TestApplyAdvanceIsIdempotent(t *testing.T) {
	now := time.Now()
	history := []StatusEntry{entry(StatusEnquiry), entry(StatusConfirmed)}

	history = ApplyAdvance(history, 500, now)

	if len(history) != 2 {
		t.Errorf("expected no duplicate trailing Confirmed, got %d entries", len(history))
	}
}

func TestApplyAdvanceIgnoresZero(t *testing.T) {
	history := NewHistory(time.Now())

	history = ApplyAdvance(history, 0, time.Now())

	if CurrentStatus(history) != StatusEnquiry {
		t.Errorf("expected Enquiry with zero advance, got %s", CurrentStatus(history))
	}
}

func TestApplyEditMarksTentative(t *testing.T) {
	history := NewHistory(time.Now())

	history = ApplyEdit(history, time.Now())

	if CurrentStatus(history) != StatusTentative {
		t.Errorf("expected Tentative after edit, got %s", CurrentStatus(history))
	}

	// Trailing Tentative is not duplicated.
	history = ApplyEdit(history, time.Now())
	if len(history) != 2 {
		t.Errorf("expected 2 entries, got %d", len(history))
	}
}

func TestApplyEditNeverDowngradesConfirmed(t *testing.T) {
	history := []StatusEntry{entry(StatusEnquiry), entry(StatusConfirmed)}

	history = ApplyEdit(history, time.Now())

	if CurrentStatus(history) != StatusConfirmed {
		t.Errorf("expected Confirmed to stick, got %s", CurrentStatus(history))
	}
}

// Flags are folded over the whole history and never revert.
func TestFoldFlagsAccumulate(t *testing.T) {
	history := []StatusEntry{
		entry(StatusEnquiry),
		entry(StatusTentative),
		entry(StatusConfirmed),
		entry(StatusTentative),
	}

	flags := FoldFlags(history)

	if !flags.IsEnquiry || !flags.IsTentative || !flags.IsConfirmed {
		t.Errorf("expected all flags true, got %+v", flags)
	}
}

func TestFoldFlagsEmptyHistory(t *testing.T) {
	flags := FoldFlags(nil)
	if flags.IsEnquiry || flags.IsTentative || flags.IsConfirmed {
		t.Errorf("expected all flags false for empty history, got %+v", flags)
	}
}
