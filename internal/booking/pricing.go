package booking

import "math"

// Banquet rate catalog: {food type, rate plan} → per-pax base price.
// Static reference data, not persisted.
var rateCatalog = map[string]map[string]float64{
	FoodTypeVeg: {
		PlanSilver:   800,
		PlanGold:     1000,
		PlanPlatinum: 1200,
	},
	FoodTypeNonVeg: {
		PlanSilver:   1000,
		PlanGold:     1200,
		PlanPlatinum: 1500,
	},
}

// Quote is the derived pricing for a booking.
type Quote struct {
	RatePerPax float64 `json:"rate_per_pax"`
	Total      float64 `json:"total"`
}

// BasePrice looks up the catalog price for a food type / rate plan pair.
func BasePrice(foodType, ratePlan string) (float64, bool) {
	plans, ok := rateCatalog[foodType]
	if !ok {
		return 0, false
	}
	price, ok := plans[ratePlan]
	return price, ok
}

// ComputeQuote derives the per-pax rate and booking total:
//
//	ratePerPax = (base − discount) × (1 + gst/100)
//	total      = ratePerPax × pax
//
// both rounded to 2 decimals. The second return value is false when no
// quote can be produced: unknown food type / plan combination, pax not
// positive, or GST not yet provided. An unset GST clears the totals
// rather than defaulting to zero.
func ComputeQuote(foodType, ratePlan string, pax int, gstPercent *float64, discount float64) (Quote, bool) {
	base, ok := BasePrice(foodType, ratePlan)
	if !ok || gstPercent == nil || pax <= 0 {
		return Quote{}, false
	}

	discountedBase := base - discount
	gstAmount := discountedBase * (*gstPercent) / 100
	ratePerPax := discountedBase + gstAmount

	return Quote{
		RatePerPax: round2(ratePerPax),
		Total:      round2(ratePerPax * float64(pax)),
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
