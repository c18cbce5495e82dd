package roster

import "time"

// ResolveStatus classifies an event relative to now. An event dated today is
// always active regardless of time-of-day, even though its nominal instant
// (midnight) is already behind now; only for other days does the full instant
// comparison decide upcoming vs past. The asymmetry is intentional.
func ResolveStatus(eventDate, now time.Time) Status {
	if sameCalendarDay(eventDate, now) {
		return StatusActive
	}
	if eventDate.After(now) {
		return StatusUpcoming
	}
	return StatusPast
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
