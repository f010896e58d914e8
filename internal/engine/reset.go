package engine

import "time"

// ShouldReset reports whether progress recorded at last is stale at now.
// It compares calendar dates in now's location, not elapsed time: crossing
// local midnight resets even minutes later, while 30 hours inside one
// calendar date never would. A nil last (never reset) always resets.
func ShouldReset(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}
	ly, lm, ld := last.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ly != ny || lm != nm || ld != nd
}
