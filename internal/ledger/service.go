package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"rollcall/internal/metrics"
	"rollcall/internal/roster"
	"rollcall/internal/watch"
)

// Clock times are written in the original record format: locale clock time for
// login/logout, locale date for the record date, ISO day for the event date.
const (
	clockFormat = "3:04:05 PM"
	dateFormat  = "1/2/2006"
	dayFormat   = "2006-01-02"
)

// Store is what the service needs from the backing store.
type Store interface {
	InsertEvent(ctx context.Context, evt roster.Event) error
	GetEvent(ctx context.Context, id string) (roster.Event, error)
	ListEvents(ctx context.Context) ([]roster.Event, error)
	InsertStudent(ctx context.Context, s roster.Student) error
	ListStudents(ctx context.Context) ([]roster.Student, error)
	InsertRecord(ctx context.Context, rec roster.AttendanceRecord) error
	SetLogout(ctx context.Context, id, logoutTime string) (roster.AttendanceRecord, error)
	ListRecordsByEvent(ctx context.Context, eventID string) ([]roster.AttendanceRecord, error)
	ListRecords(ctx context.Context) ([]roster.AttendanceRecord, error)
	CountRecordsByEvent(ctx context.Context, eventID string) (int, error)
}

// Service coordinates attendance writes: validation, the duplicate-login
// check, and change notifications. It keeps no state of its own; the store is
// the single source of truth.
type Service struct {
	store    Store
	notifier watch.Notifier
	now      func() time.Time
}

// NewService creates a service backed by a store and a change notifier.
func NewService(store Store, notifier watch.Notifier) *Service {
	return &Service{store: store, notifier: notifier, now: time.Now}
}

// WithClock overrides the clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateEvent validates and persists a new event. Status is never persisted;
// readers derive it from the date on every load.
func (s *Service) CreateEvent(ctx context.Context, title, date, description string) (roster.Event, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || date == "" {
		return roster.Event{}, fmt.Errorf("%w: please fill in event title and date", roster.ErrMissingFields)
	}
	day, err := time.ParseInLocation(dayFormat, date, time.Local)
	if err != nil {
		return roster.Event{}, fmt.Errorf("%w: invalid event date %q", roster.ErrMissingFields, date)
	}

	evt := roster.Event{
		ID:          uuid.NewString(),
		Title:       title,
		Date:        day,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := s.store.InsertEvent(ctx, evt); err != nil {
		metrics.StoreErrors.Inc()
		return roster.Event{}, err
	}
	s.publish(ctx, watch.CollectionEvents, evt.ID)
	return evt, nil
}

// RegisterStudent validates and persists a new student.
func (s *Service) RegisterStudent(ctx context.Context, fullName, strand, grade string) (roster.Student, error) {
	fullName = strings.TrimSpace(fullName)
	strand = strings.TrimSpace(strand)
	grade = strings.TrimSpace(grade)
	if fullName == "" || strand == "" || grade == "" {
		return roster.Student{}, fmt.Errorf("%w: please fill in all fields", roster.ErrMissingFields)
	}

	st := roster.Student{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Strand:    strand,
		Grade:     grade,
		DateAdded: s.now(),
	}
	if err := s.store.InsertStudent(ctx, st); err != nil {
		metrics.StoreErrors.Inc()
		return roster.Student{}, err
	}
	s.publish(ctx, watch.CollectionStudents, st.ID)
	return st, nil
}

// Login resolves the typed name against the registered students and opens an
// attendance record for the event and session. Any prior record with a login
// time for the same student, event and session blocks the login, whether or
// not it was logged out — a completed session cannot be re-entered.
func (s *Service) Login(ctx context.Context, studentName, eventID string, session roster.Session) (roster.AttendanceRecord, error) {
	studentName = strings.TrimSpace(studentName)
	if studentName == "" {
		return roster.AttendanceRecord{}, fmt.Errorf("%w: please enter a student name", roster.ErrMissingFields)
	}
	if !session.Valid() {
		return roster.AttendanceRecord{}, roster.ErrInvalidSession
	}

	evt, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		if !errors.Is(err, roster.ErrEventNotFound) {
			metrics.StoreErrors.Inc()
		}
		return roster.AttendanceRecord{}, err
	}

	students, err := s.store.ListStudents(ctx)
	if err != nil {
		metrics.StoreErrors.Inc()
		return roster.AttendanceRecord{}, err
	}
	student, ok := roster.FindByName(students, studentName)
	if !ok {
		return roster.AttendanceRecord{}, roster.ErrStudentNotFound
	}

	existing, err := s.store.ListRecordsByEvent(ctx, eventID)
	if err != nil {
		metrics.StoreErrors.Inc()
		return roster.AttendanceRecord{}, err
	}
	if roster.AlreadyLoggedIn(existing, student.ID, eventID, session) {
		metrics.LoginRejections.Inc()
		return roster.AttendanceRecord{}, roster.ErrAlreadyLoggedIn
	}

	now := s.now()
	rec := roster.AttendanceRecord{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		EventID:     evt.ID,
		EventTitle:  evt.Title,
		EventDate:   evt.Date.Format(dayFormat),
		Session:     session,
		StudentName: student.FullName,
		Strand:      student.Strand,
		Grade:       student.Grade,
		LoginTime:   now.Format(clockFormat),
		LogoutTime:  nil,
		Date:        now.Format(dateFormat),
	}
	if err := s.store.InsertRecord(ctx, rec); err != nil {
		metrics.StoreErrors.Inc()
		return roster.AttendanceRecord{}, err
	}
	metrics.Logins.Inc()
	s.publish(ctx, watch.CollectionAttendance, rec.ID)
	return rec, nil
}

// Logout stamps the logout time on a record. Calling it twice simply
// overwrites the timestamp with the later one; that is accepted behavior.
func (s *Service) Logout(ctx context.Context, recordID string) (roster.AttendanceRecord, error) {
	rec, err := s.store.SetLogout(ctx, recordID, s.now().Format(clockFormat))
	if err != nil {
		if !errors.Is(err, roster.ErrRecordNotFound) {
			metrics.StoreErrors.Inc()
		}
		return roster.AttendanceRecord{}, err
	}
	metrics.Logouts.Inc()
	s.publish(ctx, watch.CollectionAttendance, rec.ID)
	return rec, nil
}

func (s *Service) publish(ctx context.Context, collection, id string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, watch.Notification{Collection: collection, ID: id}); err != nil {
		log.Printf("change notification failed for %s/%s: %v", collection, id, err)
	}
}
