package snapshot

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"rollcall/internal/metrics"
	"rollcall/internal/roster"
	"rollcall/internal/watch"
)

// Loader is the read side of the backing store.
type Loader interface {
	ListEvents(ctx context.Context) ([]roster.Event, error)
	ListStudents(ctx context.Context) ([]roster.Student, error)
	ListRecords(ctx context.Context) ([]roster.AttendanceRecord, error)
}

// Snapshot is one immutable view of every collection. Callers must not mutate
// it; a refresh produces a new snapshot rather than patching the old one.
type Snapshot struct {
	Events   []roster.Event
	Students []roster.Student
	Records  []roster.AttendanceRecord
	LoadedAt time.Time
}

// Cache holds the current snapshot and replaces it wholesale whenever a
// change notification arrives. The last refresh wins; there is no incremental
// patching.
type Cache struct {
	loader Loader
	cur    atomic.Pointer[Snapshot]
}

// New creates a cache starting from an empty snapshot.
func New(loader Loader) *Cache {
	c := &Cache{loader: loader}
	c.cur.Store(&Snapshot{})
	return c
}

// Current returns the latest snapshot. Never nil.
func (c *Cache) Current() *Snapshot {
	return c.cur.Load()
}

// Refresh reloads every collection and swaps in a new snapshot. On error the
// previous snapshot stays in place.
func (c *Cache) Refresh(ctx context.Context) error {
	events, err := c.loader.ListEvents(ctx)
	if err != nil {
		metrics.StoreErrors.Inc()
		return err
	}
	students, err := c.loader.ListStudents(ctx)
	if err != nil {
		metrics.StoreErrors.Inc()
		return err
	}
	records, err := c.loader.ListRecords(ctx)
	if err != nil {
		metrics.StoreErrors.Inc()
		return err
	}
	c.cur.Store(&Snapshot{
		Events:   events,
		Students: students,
		Records:  records,
		LoadedAt: time.Now(),
	})
	metrics.SnapshotRefreshes.Inc()
	return nil
}

// Run performs an initial refresh and then refreshes on every notification
// until the context is cancelled. A failed refresh is logged and the previous
// snapshot remains live, matching the store-owns-truth model.
func (c *Cache) Run(ctx context.Context, notifier watch.Notifier) error {
	if err := c.Refresh(ctx); err != nil {
		log.Printf("initial snapshot load failed: %v", err)
	}
	changes, err := notifier.Subscribe(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := c.Refresh(ctx); err != nil {
				log.Printf("snapshot refresh failed: %v", err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
