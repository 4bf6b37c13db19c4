package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrBusClosed is returned by Emit after the bus has been closed.
var ErrBusClosed = errors.New("event bus is closed")

const defaultBufferSize = 16

// Subscription receives events matching its name filter.
type Subscription struct {
	ch     chan Event
	names  map[string]struct{}
	closed bool
	mu     sync.Mutex
}

func newSubscription(buffer int, names []string) *Subscription {
	s := &Subscription{ch: make(chan Event, buffer)}
	if len(names) > 0 {
		s.names = make(map[string]struct{}, len(names))
		for _, n := range names {
			s.names[n] = struct{}{}
		}
	}
	return s
}

// Receive returns the channel events are delivered on. The channel is closed
// when the subscription or the bus closes.
func (s *Subscription) Receive() <-chan Event {
	return s.ch
}

// Close closes the subscription. Idempotent.
func (s *Subscription) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers non-blocking; a full buffer means the event is dropped for
// this subscriber.
func (s *Subscription) send(e Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if s.names != nil {
		if _, ok := s.names[e.Name]; !ok {
			return true
		}
	}
	select {
	case s.ch <- e:
		return true
	default:
		return false
	}
}

// Bus is an in-memory, non-blocking event bus. Slow subscribers are dropped
// rather than allowed to stall emitters. All methods are safe for concurrent
// use.
type Bus struct {
	subs      map[*Subscription]struct{}
	buffer    int
	closed    bool
	mu        sync.RWMutex
	cleanupWg sync.WaitGroup
	now       func() time.Time
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithBufferSize sets the per-subscriber channel buffer. A minimum of 1 is
// enforced so sends stay non-blocking.
func WithBufferSize(n int) BusOption {
	return func(b *Bus) { b.buffer = max(n, 1) }
}

// WithNow overrides the envelope timestamp source, for tests.
func WithNow(fn func() time.Time) BusOption {
	return func(b *Bus) {
		if fn != nil {
			b.now = fn
		}
	}
}

// NewBus creates an in-memory bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subs:   make(map[*Subscription]struct{}),
		buffer: defaultBufferSize,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a subscription for the given event names; with no
// names, every event is delivered. The subscription is removed automatically
// when ctx is cancelled. Subscribing to a closed bus returns an
// already-closed subscription.
func (b *Bus) Subscribe(ctx context.Context, names ...string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscription(b.buffer, names)
	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}
	return sub
}

// Emit delivers a named event to every matching subscriber. Delivery is
// non-blocking: subscribers with full buffers miss the event and are removed.
func (b *Bus) Emit(ctx context.Context, name string, payload any) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	evt := Event{
		ID:      uuid.New(),
		Name:    name,
		At:      b.now(),
		Payload: payload,
	}

	for sub := range b.subs {
		if !sub.send(evt) {
			// Removal happens off the emit path to keep Emit under a
			// read lock.
			go b.unsubscribe(sub)
		}
	}
	return nil
}

// Close shuts the bus down and closes every subscription. Idempotent.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		_ = sub.Close()
	}
	clear(b.subs)
	b.mu.Unlock()

	b.cleanupWg.Wait()
	return nil
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, sub)
	_ = sub.Close()
}
