package roster

import "time"

// Session is one of the two fixed daily attendance windows.
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

// Valid reports whether s is a known session slot.
func (s Session) Valid() bool {
	return s == SessionMorning || s == SessionAfternoon
}

// Status is the derived lifecycle classification of an event.
type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

// Student is a registered student. Created once, never mutated.
type Student struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Strand    string    `json:"strand"`
	Grade     string    `json:"grade"`
	DateAdded time.Time `json:"date_added"`
}

// Event is a scheduled event. Status is never stored; it is recomputed
// from Date on every read.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttendanceRecord is one login/logout entry. Student and event fields are
// copied in at write time so the history view needs no joins; StudentID and
// EventID remain the only join keys any logic may use.
type AttendanceRecord struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	EventID     string  `json:"event_id"`
	EventTitle  string  `json:"event_title"`
	EventDate   string  `json:"event_date"`
	Session     Session `json:"session"`
	StudentName string  `json:"student_name"`
	Strand      string  `json:"strand"`
	Grade       string  `json:"grade"`
	LoginTime   string  `json:"login_time"`
	LogoutTime  *string `json:"logout_time"`
	Date        string  `json:"date"`
}

// Open reports whether the record has no logout yet.
func (r AttendanceRecord) Open() bool {
	return r.LogoutTime == nil
}
