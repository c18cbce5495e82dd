package ledger

import (
	"context"
	"database/sql"
	"errors"

	"rollcall/internal/roster"
)

// Repository persists roster data in Postgres. List methods return rows in
// insertion order (seq), which the grouping and registration-order views
// depend on.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// InsertEvent writes a new event.
func (r *Repository) InsertEvent(ctx context.Context, evt roster.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, title, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, evt.ID, evt.Title, evt.Date, evt.Description, evt.CreatedAt)
	return err
}

// GetEvent returns a single event by id.
func (r *Repository) GetEvent(ctx context.Context, id string) (roster.Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, date, description, created_at
		FROM events WHERE id = $1
	`, id)
	var evt roster.Event
	if err := row.Scan(&evt.ID, &evt.Title, &evt.Date, &evt.Description, &evt.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Event{}, roster.ErrEventNotFound
		}
		return roster.Event{}, err
	}
	return evt, nil
}

// ListEvents returns all events in creation order.
func (r *Repository) ListEvents(ctx context.Context) ([]roster.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, date, description, created_at
		FROM events ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []roster.Event
	for rows.Next() {
		var evt roster.Event
		if err := rows.Scan(&evt.ID, &evt.Title, &evt.Date, &evt.Description, &evt.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, evt)
	}
	return res, rows.Err()
}

// InsertStudent writes a new student.
func (r *Repository) InsertStudent(ctx context.Context, s roster.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO students (id, full_name, strand, grade, date_added)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.FullName, s.Strand, s.Grade, s.DateAdded)
	return err
}

// ListStudents returns all students in registration order.
func (r *Repository) ListStudents(ctx context.Context) ([]roster.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, full_name, strand, grade, date_added
		FROM students ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []roster.Student
	for rows.Next() {
		var s roster.Student
		if err := rows.Scan(&s.ID, &s.FullName, &s.Strand, &s.Grade, &s.DateAdded); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

const recordColumns = `id, student_id, event_id, event_title, event_date, session,
	student_name, strand, grade, login_time, logout_time, date`

func scanRecord(row interface{ Scan(...any) error }) (roster.AttendanceRecord, error) {
	var rec roster.AttendanceRecord
	err := row.Scan(&rec.ID, &rec.StudentID, &rec.EventID, &rec.EventTitle, &rec.EventDate,
		&rec.Session, &rec.StudentName, &rec.Strand, &rec.Grade, &rec.LoginTime,
		&rec.LogoutTime, &rec.Date)
	return rec, err
}

// InsertRecord writes a new attendance record.
func (r *Repository) InsertRecord(ctx context.Context, rec roster.AttendanceRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (`+recordColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, rec.ID, rec.StudentID, rec.EventID, rec.EventTitle, rec.EventDate, rec.Session,
		rec.StudentName, rec.Strand, rec.Grade, rec.LoginTime, rec.LogoutTime, rec.Date)
	return err
}

// SetLogout stamps the logout time on a record. Overwrites any previous
// logout; the record is returned as stored.
func (r *Repository) SetLogout(ctx context.Context, id, logoutTime string) (roster.AttendanceRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE attendance SET logout_time = $2 WHERE id = $1
		RETURNING `+recordColumns+`
	`, id, logoutTime)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.AttendanceRecord{}, roster.ErrRecordNotFound
	}
	return rec, err
}

// ListRecordsByEvent returns an event's records in arrival order.
func (r *Repository) ListRecordsByEvent(ctx context.Context, eventID string) ([]roster.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM attendance WHERE event_id = $1 ORDER BY seq
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListRecords returns every attendance record in arrival order.
func (r *Repository) ListRecords(ctx context.Context) ([]roster.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM attendance ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// CountRecordsByEvent counts attendance records for one event.
func (r *Repository) CountRecordsByEvent(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM attendance WHERE event_id = $1
	`, eventID).Scan(&n)
	return n, err
}

func collectRecords(rows *sql.Rows) ([]roster.AttendanceRecord, error) {
	var res []roster.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

var _ Store = (*Repository)(nil)
