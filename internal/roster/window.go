package roster

// WindowLimit is the number of records shown before the rest go behind a
// "see more" toggle.
const WindowLimit = 10

// Window is the display slice of a record list. HiddenCount is the number of
// records currently held behind the toggle; the toggle label shows it.
type Window struct {
	Visible     []AttendanceRecord `json:"visible"`
	HiddenCount int                `json:"hidden_count"`
	Expandable  bool               `json:"expandable"`
	Expanded    bool               `json:"expanded"`
}

// ApplyWindow truncates records to the first WindowLimit entries unless the
// caller expanded the view or the list fits entirely. Order is never changed;
// all records are assumed already fetched.
func ApplyWindow(records []AttendanceRecord, expanded bool) Window {
	if len(records) <= WindowLimit {
		return Window{Visible: records}
	}
	if expanded {
		return Window{Visible: records, Expandable: true, Expanded: true}
	}
	return Window{
		Visible:     records[:WindowLimit],
		HiddenCount: len(records) - WindowLimit,
		Expandable:  true,
	}
}
