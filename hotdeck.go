package hotdeck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/hotdeck/internal/runtime"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/observability"
	"github.com/aretw0/hotdeck/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Engine is the high-level entry point for the hotdeck library.
// It wires the runtime engine to an event bus and, optionally, to Prometheus
// metrics, and exposes the whole hotkey and deck API.
type Engine struct {
	*runtime.Engine

	store       ports.SettingsStore
	bus         *observability.Bus
	metrics     *observability.Metrics
	registerer  prometheus.Registerer
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
	shutdown    context.CancelFunc
}

var _ ports.HotkeyService = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore sets the settings store. The default is an in-memory store.
func WithStore(s ports.SettingsStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithBroadcaster sets the broadcasting tool driven by scene, source, filter,
// recording, streaming and raw actions.
func WithBroadcaster(b ports.Broadcaster) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithBroadcaster(b))
	}
}

// WithMixer sets the audio mixer driven by volume and mute actions.
func WithMixer(m ports.Mixer) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMixer(m))
	}
}

// WithLocker serializes snapshot writes across processes sharing the store.
func WithLocker(l ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithLocker(l))
	}
}

// WithLearningDebounce overrides the keyboard chord debounce (default 500ms).
func WithLearningDebounce(d time.Duration) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithLearningDebounce(d))
	}
}

// WithMetrics registers engine metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

// New creates an engine and restores the snapshot found in the store.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.bus = observability.NewBus(observability.WithBusLogger(eng.logger))

	if eng.registerer != nil {
		m, err := observability.NewMetrics(eng.registerer)
		if err != nil {
			return nil, err
		}
		m.Attach(eng.bus)
		eng.metrics = m
	}

	shutdownCtx, shutdown := context.WithCancel(context.Background())
	eng.shutdown = shutdown

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithPublisher(eng.bus),
		runtime.WithShutdown(shutdownCtx),
	}
	runtimeOpts = append(runtimeOpts, eng.runtimeOpts...)
	eng.Engine = runtime.NewEngine(eng.store, runtimeOpts...)

	if err := eng.Load(ctx); err != nil {
		shutdown()
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return eng, nil
}

// Bus returns the event bus every domain event is published on.
func (e *Engine) Bus() *observability.Bus {
	return e.bus
}

// Subscribe registers h for the given event types, or all events when none are given.
func (e *Engine) Subscribe(h observability.Handler, types ...domain.EventType) (unsubscribe func()) {
	return e.bus.Subscribe(h, types...)
}

// Metrics returns the registered metrics, or nil when WithMetrics was not used.
func (e *Engine) Metrics() *observability.Metrics {
	return e.metrics
}

// Store returns the settings store backing the engine.
func (e *Engine) Store() ports.SettingsStore {
	return e.store
}

// Close ends running hotkeys at their next delay, stops any learning cycle
// and detaches every subscriber.
func (e *Engine) Close() error {
	e.shutdown()
	if e.IsLearning() {
		e.StopLearning()
	}
	e.bus.Close()
	return nil
}
