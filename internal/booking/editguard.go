package booking

import "github.com/priyansh911911/ashokacrm-sub000/internal/core"

// staffEditLimit is the number of menu edits a non-admin gets before
// further changes are dropped.
const staffEditLimit = 2

// EditDecision is the outcome of the staff edit-count guard.
type EditDecision struct {
	// IncludeMenu reports whether the proposed categorized menu may be
	// written. When false the stored menu is retained as-is.
	IncludeMenu bool
	// EditCount is the staff edit counter after the decision.
	EditCount int
}

// EvaluateMenuEdit applies the staff edit limit to a proposed menu
// change. Admins always pass and never touch the counter, and a no-op
// proposal is never counted. Staff edits below the limit go through
// without incrementing; once the counter has reached the limit the
// change is dropped and the counter advances.
//
// The counter deliberately moves only after the limit check already
// fails, mirroring how the booking screens have always behaved.
func EvaluateMenuEdit(role string, editCount int, changed bool) EditDecision {
	if role == core.RoleAdmin || !changed {
		return EditDecision{IncludeMenu: true, EditCount: editCount}
	}
	if editCount >= staffEditLimit {
		return EditDecision{IncludeMenu: false, EditCount: editCount + 1}
	}
	return EditDecision{IncludeMenu: true, EditCount: editCount}
}

// MenuChanged reports structural inequality between the stored and the
// proposed categorized menus.
func MenuChanged(prev, next map[string][]string) bool {
	if len(prev) != len(next) {
		return true
	}
	for category, prevItems := range prev {
		nextItems, ok := next[category]
		if !ok || len(prevItems) != len(nextItems) {
			return true
		}
		for i := range prevItems {
			if prevItems[i] != nextItems[i] {
				return true
			}
		}
	}
	return false
}
