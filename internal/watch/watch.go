package watch

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Collections a notification can refer to.
const (
	CollectionEvents     = "events"
	CollectionStudents   = "students"
	CollectionAttendance = "attendance"
)

// Notification signals that a collection changed at the store. Subscribers
// reload the whole collection; the notification carries no payload beyond the
// id of the touched entity.
type Notification struct {
	Collection string
	ID         string
}

// Notifier is the abstraction over different backends. Every subscriber sees
// every notification, like the original realtime-store value subscriptions.
type Notifier interface {
	Publish(ctx context.Context, n Notification) error
	Subscribe(ctx context.Context) (<-chan Notification, error)
}

// InMemory is a channel-fanout notifier for dev/testing.
type InMemory struct {
	mu   sync.Mutex
	subs []chan Notification
	size int
}

// NewInMemory creates a notifier whose subscriber channels buffer size
// notifications each.
func NewInMemory(size int) *InMemory {
	if size <= 0 {
		size = 16
	}
	return &InMemory{size: size}
}

// Publish delivers to every subscriber. A subscriber that has fallen size
// notifications behind misses this one; the next refresh covers it anyway
// since refreshes reload everything.
func (w *InMemory) Publish(ctx context.Context, n Notification) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case ch <- n:
		default:
		}
	}
	return nil
}

// Subscribe registers a new observer channel, removed when ctx ends.
func (w *InMemory) Subscribe(ctx context.Context) (<-chan Notification, error) {
	ch := make(chan Notification, w.size)
	w.mu.Lock()
	w.subs = append(w.subs, ch)
	w.mu.Unlock()

	go func() {
		<-ctx.Done()
		w.mu.Lock()
		for i, sub := range w.subs {
			if sub == ch {
				w.subs = append(w.subs[:i], w.subs[i+1:]...)
				break
			}
		}
		w.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// RedisNotifier fans notifications out over a Redis pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

// NewRedisNotifier builds a notifier on the named pub/sub channel.
func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = "rollcall:changes"
	}
	return &RedisNotifier{client: client, channel: channel}
}

// Publish broadcasts a notification.
func (w *RedisNotifier) Publish(ctx context.Context, n Notification) error {
	return w.client.Publish(ctx, w.channel, serialize(n)).Err()
}

// Subscribe streams notifications until ctx ends.
func (w *RedisNotifier) Subscribe(ctx context.Context) (<-chan Notification, error) {
	sub := w.client.Subscribe(ctx, w.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan Notification)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- deserialize(msg.Payload):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// serialize is a tiny helper to ship notifications as Collection|ID.
func serialize(n Notification) string {
	return n.Collection + "|" + n.ID
}

func deserialize(s string) Notification {
	for i, r := range s {
		if r == '|' {
			return Notification{Collection: s[:i], ID: s[i+1:]}
		}
	}
	return Notification{Collection: s}
}
