package booking

import "github.com/priyansh911911/ashokacrm-sub000/internal/core"

// Per-plan discount ceilings for non-admin users. Unknown or unset
// plans get no discount at all.
var discountCeilings = map[string]float64{
	PlanSilver:   100,
	PlanGold:     150,
	PlanPlatinum: 200,
}

// ClampDiscount applies the role-based discount policy. Admins pass
// through (floored at zero); everyone else is clamped to the plan
// ceiling. With no rate plan selected the discount is forced to zero
// for every role.
func ClampDiscount(role, ratePlan string, requested float64) float64 {
	if ratePlan == "" || requested <= 0 {
		return 0
	}
	if role == core.RoleAdmin {
		return requested
	}
	ceiling := discountCeilings[ratePlan]
	if requested > ceiling {
		return ceiling
	}
	return requested
}
