package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rollcall/internal/config"
	"rollcall/internal/ledger"
	"rollcall/internal/store"
	"rollcall/internal/watch"
)

// Worker keeps per-event attendee counts warm in Redis. It subscribes to the
// same change notifications the API's snapshot cache uses and recounts
// whenever the attendance collection changes.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	db, err := store.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)
	notifier := watch.NewRedisNotifier(redisClient.Client, "rollcall:changes")
	repo := ledger.NewRepository(db.Client)

	// Warm the counts before the first notification arrives.
	if err := recount(ctx, repo, redisClient); err != nil {
		log.Printf("initial recount failed: %v", err)
	}

	changes, err := notifier.Subscribe(ctx)
	if err != nil {
		log.Fatalf("subscribe failed: %v", err)
	}

	log.Println("worker started, waiting for changes...")
	for n := range changes {
		if n.Collection != watch.CollectionAttendance {
			continue
		}
		if err := recount(ctx, repo, redisClient); err != nil {
			log.Printf("recount after %s/%s failed: %v", n.Collection, n.ID, err)
		}
	}

	log.Println("worker stopped")
}

// recount writes every event's attendance record count to Redis, including
// zeroes for events with no records yet.
func recount(ctx context.Context, repo *ledger.Repository, r *store.Redis) error {
	events, err := repo.ListEvents(ctx)
	if err != nil {
		return err
	}
	for _, evt := range events {
		n, err := repo.CountRecordsByEvent(ctx, evt.ID)
		if err != nil {
			return err
		}
		if err := r.SetAttendeeCount(ctx, evt.ID, n); err != nil {
			return err
		}
	}
	return nil
}
