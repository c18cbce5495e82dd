// Package memory provides an in-memory ledger store for development and
// tests. Semantics match the Postgres repository: lists come back in
// insertion order and logout overwrites are allowed.
package memory

import (
	"context"
	"sync"

	"rollcall/internal/roster"
)

// Store keeps every collection in insertion-order slices.
type Store struct {
	mu       sync.Mutex
	events   []roster.Event
	students []roster.Student
	records  []roster.AttendanceRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// InsertEvent appends an event.
func (s *Store) InsertEvent(ctx context.Context, evt roster.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return nil
}

// GetEvent returns an event by id.
func (s *Store) GetEvent(ctx context.Context, id string) (roster.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, evt := range s.events {
		if evt.ID == id {
			return evt, nil
		}
	}
	return roster.Event{}, roster.ErrEventNotFound
}

// ListEvents returns all events in creation order.
func (s *Store) ListEvents(ctx context.Context) ([]roster.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// InsertStudent appends a student.
func (s *Store) InsertStudent(ctx context.Context, st roster.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append(s.students, st)
	return nil
}

// ListStudents returns all students in registration order.
func (s *Store) ListStudents(ctx context.Context) ([]roster.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

// InsertRecord appends an attendance record.
func (s *Store) InsertRecord(ctx context.Context, rec roster.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// SetLogout stamps the logout time, overwriting any previous stamp.
func (s *Store) SetLogout(ctx context.Context, id, logoutTime string) (roster.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			t := logoutTime
			s.records[i].LogoutTime = &t
			return s.records[i], nil
		}
	}
	return roster.AttendanceRecord{}, roster.ErrRecordNotFound
}

// ListRecordsByEvent returns one event's records in arrival order.
func (s *Store) ListRecordsByEvent(ctx context.Context, eventID string) ([]roster.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []roster.AttendanceRecord
	for _, rec := range s.records {
		if rec.EventID == eventID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListRecords returns every record in arrival order.
func (s *Store) ListRecords(ctx context.Context) ([]roster.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.AttendanceRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// CountRecordsByEvent counts records for one event.
func (s *Store) CountRecordsByEvent(ctx context.Context, eventID string) (int, error) {
	recs, _ := s.ListRecordsByEvent(ctx, eventID)
	return len(recs), nil
}
