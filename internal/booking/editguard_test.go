package booking

import (
	"testing"

	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
)

func TestEvaluateMenuEditAdminNeverCounted(t *testing.T) {
	decision := EvaluateMenuEdit(core.RoleAdmin, 5, true)

	if !decision.IncludeMenu {
		t.Errorf("expected admin change to be included")
	}
	if decision.EditCount != 5 {
		t.Errorf("expected counter untouched, got %d", decision.EditCount)
	}
}

func TestEvaluateMenuEditStaffBelowLimit(t *testing.T) {
	for _, count := range []int{0, 1} {
		decision := EvaluateMenuEdit(core.RoleStaff, count, true)

		if !decision.IncludeMenu {
			t.Errorf("count=%d: expected change to be included", count)
		}
		if decision.EditCount != count {
			t.Errorf("count=%d: expected no increment, got %d", count, decision.EditCount)
		}
	}
}

// Once the counter has reached the limit, the menu is dropped from the
// write and only then does the counter advance.
func TestEvaluateMenuEditStaffAtLimit(t *testing.T) {
	decision := EvaluateMenuEdit(core.RoleStaff, 2, true)

	if decision.IncludeMenu {
		t.Errorf("expected menu change to be dropped at the limit")
	}
	if decision.EditCount != 3 {
		t.Errorf("expected counter to advance to 3, got %d", decision.EditCount)
	}
}

func TestEvaluateMenuEditNoOpNeverCounted(t *testing.T) {
	decision := EvaluateMenuEdit(core.RoleStaff, 2, false)

	if !decision.IncludeMenu {
		t.Errorf("expected no-op to pass through")
	}
	if decision.EditCount != 2 {
		t.Errorf("expected counter untouched on no-op, got %d", decision.EditCount)
	}
}

func TestMenuChanged(t *testing.T) {
	prev := map[string][]string{"Starters": {"Paneer Tikka", "Spring Roll"}}

	if MenuChanged(prev, map[string][]string{"Starters": {"Paneer Tikka", "Spring Roll"}}) {
		t.Errorf("identical menus reported as changed")
	}
	if !MenuChanged(prev, map[string][]string{"Starters": {"Paneer Tikka"}}) {
		t.Errorf("removed item not reported as change")
	}
	if !MenuChanged(prev, map[string][]string{"Starters": {"Paneer Tikka", "Hara Kebab"}}) {
		t.Errorf("swapped item not reported as change")
	}
	if !MenuChanged(prev, nil) {
		t.Errorf("cleared menu not reported as change")
	}
	if MenuChanged(nil, nil) {
		t.Errorf("two empty menus reported as changed")
	}
}
