package roster

// FilterBySession returns the records belonging to one session slot,
// preserving order. No deduplication.
func FilterBySession(records []AttendanceRecord, session Session) []AttendanceRecord {
	var out []AttendanceRecord
	for _, r := range records {
		if r.Session == session {
			out = append(out, r)
		}
	}
	return out
}

// AlreadyLoggedIn reports whether an existing record blocks a new login for
// the given student, event and session. Any matching record with a login time
// counts, open or completed.
func AlreadyLoggedIn(records []AttendanceRecord, studentID, eventID string, session Session) bool {
	for _, r := range records {
		if r.StudentID == studentID && r.EventID == eventID && r.Session == session && r.LoginTime != "" {
			return true
		}
	}
	return false
}
