package roster

// EventGroup holds one event's records in first-seen order. Title and Date
// come from the group's first record, copied at login time.
type EventGroup struct {
	EventID    string             `json:"event_id"`
	EventTitle string             `json:"event_title"`
	EventDate  string             `json:"event_date"`
	Records    []AttendanceRecord `json:"records"`
}

// GroupByEvent buckets records by event id. Groups appear in the order their
// first record appears, and records keep their arrival order within a group.
func GroupByEvent(records []AttendanceRecord) []EventGroup {
	index := make(map[string]int)
	var groups []EventGroup
	for _, r := range records {
		i, ok := index[r.EventID]
		if !ok {
			i = len(groups)
			index[r.EventID] = i
			title := r.EventTitle
			if title == "" {
				title = "Event"
			}
			date := r.EventDate
			if date == "" {
				date = r.Date
			}
			groups = append(groups, EventGroup{EventID: r.EventID, EventTitle: title, EventDate: date})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// HistoryGroup is an event group with its display window applied.
type HistoryGroup struct {
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
	Window     Window `json:"window"`
}

// BuildHistory groups records by event and windows each group independently.
// expanded carries the per-event toggle state keyed by event id.
func BuildHistory(records []AttendanceRecord, expanded map[string]bool) []HistoryGroup {
	groups := GroupByEvent(records)
	out := make([]HistoryGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, HistoryGroup{
			EventID:    g.EventID,
			EventTitle: g.EventTitle,
			EventDate:  g.EventDate,
			Window:     ApplyWindow(g.Records, expanded[g.EventID]),
		})
	}
	return out
}
