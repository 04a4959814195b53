package booking

import (
	"math"
	"testing"
)

func gst(v float64) *float64 { return &v }

func TestComputeQuoteFormula(t *testing.T) {
	// Veg/Gold base is 1000: (1000-150)*1.18 = 1003 per pax.
	quote, ok := ComputeQuote(FoodTypeVeg, PlanGold, 50, gst(18), 150)
	if !ok {
		t.Fatalf("expected a quote")
	}

	if quote.RatePerPax != 1003 {
		t.Errorf("expected rate per pax 1003, got %v", quote.RatePerPax)
	}
	if quote.Total != 50150 {
		t.Errorf("expected total 50150, got %v", quote.Total)
	}
}

func TestComputeQuoteRoundsToTwoDecimals(t *testing.T) {
	base, ok := BasePrice(FoodTypeNonVeg, PlanPlatinum)
	if !ok {
		t.Fatalf("missing catalog entry")
	}

	discount := 33.33
	g := 12.5
	pax := 7

	quote, ok := ComputeQuote(FoodTypeNonVeg, PlanPlatinum, pax, gst(g), discount)
	if !ok {
		t.Fatalf("expected a quote")
	}

	want := math.Round((base-discount)*(1+g/100)*float64(pax)*100) / 100
	if quote.Total != want {
		t.Errorf("expected total %v, got %v", want, quote.Total)
	}
}

func TestComputeQuoteUnknownCombinationClearsOutput(t *testing.T) {
	if _, ok := ComputeQuote("Jain", PlanGold, 10, gst(18), 0); ok {
		t.Errorf("expected no quote for unknown food type")
	}
	if _, ok := ComputeQuote(FoodTypeVeg, "Diamond", 10, gst(18), 0); ok {
		t.Errorf("expected no quote for unknown rate plan")
	}
}

// An unset GST clears the totals entirely instead of defaulting to 0.
func TestComputeQuoteUnsetGSTClearsOutput(t *testing.T) {
	if _, ok := ComputeQuote(FoodTypeVeg, PlanGold, 10, nil, 0); ok {
		t.Errorf("expected no quote when GST is unset")
	}
}

func TestComputeQuoteRequiresPositivePax(t *testing.T) {
	if _, ok := ComputeQuote(FoodTypeVeg, PlanGold, 0, gst(18), 0); ok {
		t.Errorf("expected no quote for zero pax")
	}
}
