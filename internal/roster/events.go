package roster

import (
	"sort"
	"time"
)

// EventView couples an event with its derived status. Attendees is the count
// of attendance records referencing the event.
type EventView struct {
	Event
	Status    Status `json:"status"`
	Attendees int    `json:"attendees"`
}

// SortByDateDesc returns a copy of events ordered newest first.
func SortByDateDesc(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// TodaysEvents returns events scheduled on now's calendar day, in input order.
func TodaysEvents(events []Event, now time.Time) []Event {
	var out []Event
	for _, e := range events {
		if sameCalendarDay(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}

// RecentEvents returns up to limit non-upcoming events, newest first.
func RecentEvents(events []Event, now time.Time, limit int) []Event {
	var out []Event
	for _, e := range SortByDateDesc(events) {
		if ResolveStatus(e.Date, now) == StatusUpcoming {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}
