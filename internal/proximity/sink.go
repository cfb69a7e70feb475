package proximity

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Sink delivers notifications. Delivery is best effort: there is no
// acknowledgment and no retry.
type Sink interface {
	Deliver(ctx context.Context, n Notification) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, n Notification) error

func (f SinkFunc) Deliver(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// MultiSink delivers to every sink and joins their errors
type MultiSink []Sink

func (m MultiSink) Deliver(ctx context.Context, n Notification) error {
	var errs []error
	for _, s := range m {
		if err := s.Deliver(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes each notification to a structured log
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "notification-log")}
}

func (s *LogSink) Deliver(ctx context.Context, n Notification) error {
	s.logger.InfoContext(ctx, "proximity notification",
		"id", n.ID,
		"place", n.PlaceName,
		"title", n.Title,
		"body", n.Body,
	)
	return nil
}

// Broadcaster fans notifications out to channel subscribers. A subscriber
// whose buffer is full misses the notification rather than blocking delivery.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan Notification
	next   int
	buffer int
	logger *slog.Logger
}

func NewBroadcaster(buffer int, logger *slog.Logger) *Broadcaster {
	if buffer < 1 {
		buffer = 1
	}
	return &Broadcaster{
		subs:   make(map[int]chan Notification),
		buffer: buffer,
		logger: logger.With("component", "notification-broadcaster"),
	}
}

// Subscribe registers a subscriber. The returned cancel func unsubscribes and
// closes the channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Notification, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

// Subscribers returns the number of active subscribers
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) Deliver(_ context.Context, n Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- n:
		default:
			b.logger.Warn("subscriber buffer full, dropping notification",
				"subscriber", id,
				"notification_id", n.ID,
			)
		}
	}
	return nil
}
