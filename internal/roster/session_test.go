package roster

import "testing"

func TestFilterBySession(t *testing.T) {
	records := []AttendanceRecord{
		{ID: "a", Session: SessionMorning},
		{ID: "b", Session: SessionAfternoon},
		{ID: "c", Session: SessionMorning},
		{ID: "d", Session: SessionMorning},
	}

	got := FilterBySession(records, SessionMorning)

	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFilterBySession_NoMatches(t *testing.T) {
	records := []AttendanceRecord{{ID: "a", Session: SessionMorning}}
	if got := FilterBySession(records, SessionAfternoon); len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
}

func TestAlreadyLoggedIn(t *testing.T) {
	done := "11:59:00 AM"
	records := []AttendanceRecord{
		{StudentID: "s1", EventID: "e1", Session: SessionMorning, LoginTime: "8:00:00 AM"},
		{StudentID: "s2", EventID: "e1", Session: SessionMorning, LoginTime: "8:05:00 AM", LogoutTime: &done},
	}

	tests := []struct {
		name           string
		student, event string
		session        Session
		want           bool
	}{
		{"open record blocks", "s1", "e1", SessionMorning, true},
		{"completed record still blocks", "s2", "e1", SessionMorning, true},
		{"other session is free", "s1", "e1", SessionAfternoon, false},
		{"other event is free", "s1", "e2", SessionMorning, false},
		{"unknown student is free", "s9", "e1", SessionMorning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlreadyLoggedIn(records, tt.student, tt.event, tt.session); got != tt.want {
				t.Errorf("AlreadyLoggedIn(%s,%s,%s) = %v, want %v", tt.student, tt.event, tt.session, got, tt.want)
			}
		})
	}
}
