package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// DefaultLearningDebounce is the quiet period that finalizes a keyboard chord.
const DefaultLearningDebounce = 500 * time.Millisecond

const (
	snapshotLockKey = "hotdeck:snapshot"
	snapshotLockTTL = 5 * time.Second
)

// Engine owns the hotkey and deck collections and runs the execution,
// learning and deck-activation logic on top of them.
//
// All mutations are serialized by mu and followed by a full snapshot persist.
// Events are published after mu is released, on the calling goroutine.
type Engine struct {
	mu             sync.Mutex
	hotkeys        []*domain.Hotkey
	decks          []*domain.Deck
	activeSubDecks map[string]string
	currentDeckID  string
	history        []domain.ExecutionRecord
	learning       *learningState
	learningGen    uint64

	store       ports.SettingsStore
	locker      ports.DistributedLocker
	broadcaster ports.Broadcaster
	mixer       ports.Mixer
	publisher   ports.EventPublisher
	logger      *slog.Logger
	debounce    time.Duration
	now         func() time.Time
	shutdown    context.Context
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBroadcaster sets the broadcasting tool targeted by broadcaster actions.
func WithBroadcaster(b ports.Broadcaster) EngineOption {
	return func(e *Engine) {
		e.broadcaster = b
	}
}

// WithMixer sets the audio mixer targeted by volume and mute actions.
func WithMixer(m ports.Mixer) EngineOption {
	return func(e *Engine) {
		e.mixer = m
	}
}

// WithPublisher sets the receiver of domain events.
func WithPublisher(p ports.EventPublisher) EngineOption {
	return func(e *Engine) {
		e.publisher = p
	}
}

// WithLocker serializes snapshot writes with other processes sharing the store.
func WithLocker(l ports.DistributedLocker) EngineOption {
	return func(e *Engine) {
		e.locker = l
	}
}

// WithLearningDebounce overrides the keyboard chord debounce.
func WithLearningDebounce(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.debounce = d
		}
	}
}

// WithShutdown ties running hotkeys to ctx: once it is done, pending delays
// end early and the run fails. Callers of Execute cannot cancel a run.
func WithShutdown(ctx context.Context) EngineOption {
	return func(e *Engine) {
		e.shutdown = ctx
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine persisting to store.
// The engine starts empty; call Load to restore a previous snapshot.
func NewEngine(store ports.SettingsStore, opts ...EngineOption) *Engine {
	e := &Engine{
		hotkeys:        []*domain.Hotkey{},
		decks:          []*domain.Deck{},
		activeSubDecks: map[string]string{},
		store:          store,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		debounce:       DefaultLearningDebounce,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load restores hotkeys, decks and the active-sub-deck map from the store.
// Missing keys yield empty collections.
func (e *Engine) Load(ctx context.Context) error {
	var (
		hotkeys []*domain.Hotkey
		decks   []*domain.Deck
		active  map[string]string
	)
	if err := e.loadKey(ctx, ports.KeyHotkeys, &hotkeys); err != nil {
		return err
	}
	if err := e.loadKey(ctx, ports.KeyDecks, &decks); err != nil {
		return err
	}
	if err := e.loadKey(ctx, ports.KeyActiveSubDecks, &active); err != nil {
		return err
	}

	e.mu.Lock()
	e.hotkeys = compact(hotkeys)
	e.decks = compact(decks)
	e.syncSubDeckSizesLocked()
	e.activeSubDecks = map[string]string{}
	for mainID, subID := range active {
		if sub := e.deckLocked(subID); sub != nil && sub.ParentDeckID == mainID {
			e.activeSubDecks[mainID] = subID
			continue
		}
		e.logger.Warn("dropping stale active sub-deck", "deck_id", mainID, "sub_deck_id", subID)
	}
	if e.deckLocked(e.currentDeckID) == nil {
		e.currentDeckID = ""
	}
	ev := domain.Initialized{Hotkeys: len(e.hotkeys), Decks: len(e.decks)}
	e.mu.Unlock()

	e.logger.Info("engine initialized", "hotkeys", ev.Hotkeys, "decks", ev.Decks)
	e.publish(ev)
	return nil
}

// syncSubDeckSizesLocked gives every sub-deck its parent's grid size.
func (e *Engine) syncSubDeckSizesLocked() {
	for _, d := range e.decks {
		if !d.IsSubDeck() {
			continue
		}
		parent := e.deckLocked(d.ParentDeckID)
		if parent == nil || (d.Rows == parent.Rows && d.Columns == parent.Columns) {
			continue
		}
		e.logger.Warn("resizing sub-deck to match its parent",
			"deck_id", d.ID, "parent_id", parent.ID,
			"rows", parent.Rows, "columns", parent.Columns)
		d.Rows = parent.Rows
		d.Columns = parent.Columns
	}
}

func (e *Engine) loadKey(ctx context.Context, key string, out any) error {
	data, err := e.store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// persistLocked writes the full snapshot. The caller holds mu.
// In-memory state stays authoritative when a write fails; the error is logged and returned.
func (e *Engine) persistLocked(ctx context.Context) error {
	hotkeys, err := json.Marshal(e.hotkeys)
	if err != nil {
		return e.persistFailed(fmt.Errorf("failed to encode hotkeys: %w", err))
	}
	decks, err := json.Marshal(e.decks)
	if err != nil {
		return e.persistFailed(fmt.Errorf("failed to encode decks: %w", err))
	}
	active, err := json.Marshal(e.activeSubDecks)
	if err != nil {
		return e.persistFailed(fmt.Errorf("failed to encode active sub-decks: %w", err))
	}

	if e.locker != nil {
		lockCtx, cancel := context.WithTimeout(ctx, snapshotLockTTL)
		unlock, err := e.locker.Lock(lockCtx, snapshotLockKey, snapshotLockTTL)
		cancel()
		if err != nil {
			return e.persistFailed(fmt.Errorf("failed to lock snapshot: %w", err))
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				e.logger.Warn("failed to release snapshot lock", "err", err)
			}
		}()
	}

	for _, kv := range []struct {
		key   string
		value []byte
	}{
		{ports.KeyHotkeys, hotkeys},
		{ports.KeyDecks, decks},
		{ports.KeyActiveSubDecks, active},
	} {
		if err := e.store.Set(ctx, kv.key, kv.value); err != nil {
			return e.persistFailed(fmt.Errorf("failed to persist %s: %w", kv.key, err))
		}
	}
	return nil
}

func (e *Engine) persistFailed(err error) error {
	e.logger.Error("snapshot not persisted", "err", err)
	return err
}

func (e *Engine) publish(events ...domain.Event) {
	if e.publisher == nil {
		return
	}
	for _, ev := range events {
		e.publisher.Publish(ev)
	}
}

// compact drops nil entries and never returns a nil slice.
func compact[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
