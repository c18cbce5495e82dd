package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the Postgres pool backing the attendance ledger.
type DB struct {
	Client *sql.DB
}

// NewDB opens a Postgres pool via the pgx stdlib driver and verifies
// connectivity before returning. The pool is sized for the API and worker,
// which run a handful of short queries per change notification.
func NewDB(ctx context.Context, connString string) (*DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{Client: db}, nil
}

// Migrate applies the ledger schema to this connection.
func (d *DB) Migrate(ctx context.Context) error {
	return Migrate(ctx, d.Client)
}

// Close closes the underlying pool. Safe on a nil receiver, so callers can
// defer it before checking which backend they got.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
