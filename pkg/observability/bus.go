package observability

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// Handler receives published events.
type Handler func(domain.Event)

// Bus is a typed publish/subscribe fan-out for domain events.
//
// Handlers run synchronously on the publishing goroutine, in subscription
// order. A panicking handler is recovered and logged so the others still run.
type Bus struct {
	mu     sync.RWMutex
	subs   []*subscription
	nextID uint64
	closed atomic.Bool
	logger *slog.Logger
}

type subscription struct {
	id      uint64
	types   map[domain.EventType]struct{}
	handler Handler
}

func (s *subscription) wants(t domain.EventType) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[t]
	return ok
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithBusLogger sets the logger used to report handler panics and dropped events.
func WithBusLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers h for the given event types, or for every event when
// none are given. The returned function removes the subscription.
func (b *Bus) Subscribe(h Handler, types ...domain.EventType) (unsubscribe func()) {
	if b.closed.Load() || h == nil {
		return func() {}
	}
	sub := &subscription{handler: h}
	if len(types) > 0 {
		sub.types = make(map[domain.EventType]struct{}, len(types))
		for _, t := range types {
			sub.types[t] = struct{}{}
		}
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(sub.id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every matching subscriber.
func (b *Bus) Publish(ev domain.Event) {
	if ev == nil || b.closed.Load() {
		return
	}
	b.mu.RLock()
	matching := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.wants(ev.EventType()) {
			matching = append(matching, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range matching {
		b.deliver(s, ev)
	}
}

func (b *Bus) deliver(s *subscription, ev domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "event", ev.EventType(), "panic", r)
		}
	}()
	s.handler(ev)
}

// Stream returns a channel receiving matching events until ctx is done or
// the bus is closed. Events are dropped, not queued, when the buffer is full,
// so a slow reader never stalls the engine.
func (b *Bus) Stream(ctx context.Context, buffer int, types ...domain.EventType) <-chan domain.Event {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.Event, buffer)
	if b.closed.Load() {
		close(ch)
		return ch
	}

	var (
		mu   sync.Mutex
		done bool
	)
	unsubscribe := b.Subscribe(func(ev domain.Event) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		select {
		case ch <- ev:
		default:
			b.logger.Warn("dropping event for slow stream", "event", ev.EventType())
		}
	}, types...)

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		done = true
		close(ch)
		mu.Unlock()
	}()
	return ch
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close drops every subscription. Later calls to Publish and Subscribe are no-ops.
// Streams stay open until their context is done.
func (b *Bus) Close() {
	if b.closed.Swap(true) {
		return
	}
	b.mu.Lock()
	b.subs = nil
	b.mu.Unlock()
}
