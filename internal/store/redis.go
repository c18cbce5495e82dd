package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis wraps redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to redis with short timeouts.
func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{Client: client}
}

// Healthy verifies redis connectivity.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(ctx).Err() == nil
}

const attendeeCountKey = "rollcall:attendees"

// SetAttendeeCount caches the attendance record count for an event. The
// worker refreshes these whenever the attendance collection changes.
func (r *Redis) SetAttendeeCount(ctx context.Context, eventID string, count int) error {
	return r.Client.HSet(ctx, attendeeCountKey, eventID, count).Err()
}

// AttendeeCount returns the cached count for an event. ok is false when no
// count has been cached yet, so callers can fall back to a direct query.
func (r *Redis) AttendeeCount(ctx context.Context, eventID string) (int, bool) {
	val, err := r.Client.HGet(ctx, attendeeCountKey, eventID).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
