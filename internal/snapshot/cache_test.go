package snapshot_test

import (
	"context"
	"testing"
	"time"

	"rollcall/internal/ledger"
	"rollcall/internal/ledger/memory"
	"rollcall/internal/roster"
	"rollcall/internal/snapshot"
	"rollcall/internal/watch"
)

func TestCache_StartsEmpty(t *testing.T) {
	cache := snapshot.New(memory.NewStore())

	snap := cache.Current()
	if snap == nil {
		t.Fatal("Current must never return nil")
	}
	if len(snap.Events) != 0 || len(snap.Students) != 0 || len(snap.Records) != 0 {
		t.Errorf("fresh cache should be empty: %+v", snap)
	}
}

func TestCache_RefreshReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := snapshot.New(store)

	_ = store.InsertStudent(ctx, roster.Student{ID: "s1", FullName: "Anna Cruz"})
	if err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	first := cache.Current()
	if len(first.Students) != 1 {
		t.Fatalf("expected 1 student in snapshot, got %d", len(first.Students))
	}

	_ = store.InsertStudent(ctx, roster.Student{ID: "s2", FullName: "Juan Dela Cruz"})
	if err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	second := cache.Current()
	if len(second.Students) != 2 {
		t.Errorf("expected 2 students after refresh, got %d", len(second.Students))
	}

	// The earlier snapshot is untouched; refreshes replace, never patch.
	if len(first.Students) != 1 {
		t.Errorf("old snapshot mutated: %d students", len(first.Students))
	}
}

func TestCache_RunRefreshesOnNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewStore()
	notifier := watch.NewInMemory(8)
	cache := snapshot.New(store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = cache.Run(ctx, notifier)
	}()

	svc := ledger.NewService(store, notifier)
	evt, err := svc.CreateEvent(ctx, "Sports Fest", "2026-03-14", "")
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		snap := cache.Current()
		if len(snap.Events) == 1 && snap.Events[0].ID == evt.ID {
			break
		}
		select {
		case <-deadline:
			t.Fatal("snapshot never picked up the change notification")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}
