package booking

import (
	"testing"

	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
)

func TestClampDiscountStaffCeiling(t *testing.T) {
	if got := ClampDiscount(core.RoleStaff, PlanGold, 200); got != 150 {
		t.Errorf("expected Gold ceiling 150, got %v", got)
	}
	if got := ClampDiscount(core.RoleStaff, PlanSilver, 50); got != 50 {
		t.Errorf("expected requested 50 under ceiling, got %v", got)
	}
	if got := ClampDiscount(core.RoleStaff, PlanPlatinum, 500); got != 200 {
		t.Errorf("expected Platinum ceiling 200, got %v", got)
	}
}

func TestClampDiscountAdminPassesThrough(t *testing.T) {
	if got := ClampDiscount(core.RoleAdmin, PlanGold, 999); got != 999 {
		t.Errorf("expected admin pass-through 999, got %v", got)
	}
}

func TestClampDiscountFloorsAtZero(t *testing.T) {
	if got := ClampDiscount(core.RoleAdmin, PlanGold, -10); got != 0 {
		t.Errorf("expected 0 for negative request, got %v", got)
	}
}

func TestClampDiscountUnknownPlanGetsNothing(t *testing.T) {
	if got := ClampDiscount(core.RoleStaff, "Diamond", 100); got != 0 {
		t.Errorf("expected 0 for unknown plan, got %v", got)
	}
}

// With no plan selected the discount field is disabled for everyone.
func TestClampDiscountNoPlanSelected(t *testing.T) {
	if got := ClampDiscount(core.RoleAdmin, "", 100); got != 0 {
		t.Errorf("expected 0 with no plan selected, got %v", got)
	}
}
