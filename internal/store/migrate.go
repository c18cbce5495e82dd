package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Statements run in order; each is idempotent so startup can always apply the
// full list. The seq columns keep insertion order stable across reloads, which
// the grouped history and registration-order views depend on.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		seq         BIGSERIAL,
		title       TEXT NOT NULL,
		date        DATE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		seq        BIGSERIAL,
		full_name  TEXT NOT NULL,
		strand     TEXT NOT NULL,
		grade      TEXT NOT NULL,
		date_added TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id           TEXT PRIMARY KEY,
		seq          BIGSERIAL,
		student_id   TEXT NOT NULL,
		event_id     TEXT NOT NULL,
		event_title  TEXT NOT NULL,
		event_date   TEXT NOT NULL,
		session      TEXT NOT NULL,
		student_name TEXT NOT NULL,
		strand       TEXT NOT NULL,
		grade        TEXT NOT NULL,
		login_time   TEXT NOT NULL,
		logout_time  TEXT,
		date         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS attendance_event_idx ON attendance (event_id)`,
}

// Migrate applies the schema. Safe to call on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
