package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// HandleMIDI routes a MIDI message to learning, or executes every enabled
// hotkey with a matching midi trigger. It returns the number of hotkeys run.
func (e *Engine) HandleMIDI(ctx context.Context, m domain.MIDIMessage) int {
	e.mu.Lock()
	if e.learning != nil {
		done := e.learnMIDILocked(m)
		e.mu.Unlock()
		done()
		return 0
	}
	matched := e.matchLocked(func(h *domain.Hotkey) bool { return h.MatchesMIDI(m) })
	e.mu.Unlock()

	return e.executeAll(ctx, matched)
}

// HandleKey routes a keydown to learning, or executes every enabled hotkey
// with a matching keyboard trigger. It reports whether the event was consumed,
// in which case the source should suppress default handling.
func (e *Engine) HandleKey(ctx context.Context, ev domain.KeyEvent) bool {
	e.mu.Lock()
	if e.learning != nil {
		e.learnKeyLocked(ev)
		e.mu.Unlock()
		return true
	}
	matched := e.matchLocked(func(h *domain.Hotkey) bool { return h.MatchesKey(ev) })
	e.mu.Unlock()

	e.executeAll(ctx, matched)
	return len(matched) > 0
}

// HandleInput dispatches a normalized input event by kind.
func (e *Engine) HandleInput(ctx context.Context, ev domain.InputEvent) bool {
	switch v := ev.(type) {
	case domain.MIDIMessage:
		e.HandleMIDI(ctx, v)
		return true
	case domain.KeyEvent:
		return e.HandleKey(ctx, v)
	}
	e.logger.Warn("ignoring input event", "type", fmt.Sprintf("%T", ev))
	return false
}

// Listen pumps events from src until ctx is done or src closes its channel.
// Events are handled one at a time in arrival order.
func (e *Engine) Listen(ctx context.Context, src ports.TriggerSource) error {
	events, err := src.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start trigger source: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e.HandleInput(ctx, ev)
		}
	}
}

func (e *Engine) matchLocked(match func(*domain.Hotkey) bool) []string {
	var ids []string
	for _, h := range e.hotkeys {
		if h.Enabled && match(h) {
			ids = append(ids, h.ID)
		}
	}
	return ids
}

func (e *Engine) executeAll(ctx context.Context, ids []string) int {
	for _, id := range ids {
		e.Execute(ctx, id)
	}
	return len(ids)
}
