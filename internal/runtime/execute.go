package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// Execute runs a hotkey's actions in ascending order. It returns false without
// side effects when the hotkey is unknown or disabled. Otherwise it stamps
// lastTriggered, increments triggerCount, stops at the first failing action,
// records the run in the history and publishes hotkeyExecuted.
//
// A started run ignores cancellation of ctx and ends only at completion,
// at the first failure or when the engine shuts down (see WithShutdown).
func (e *Engine) Execute(ctx context.Context, id string) bool {
	now := e.now()

	e.mu.Lock()
	h := e.hotkeyLocked(id)
	if h == nil || !h.Enabled {
		e.mu.Unlock()
		e.logger.Debug("skipping execution", "hotkey_id", id, "found", h != nil)
		return false
	}
	h.LastTriggered = &now
	h.TriggerCount++
	_ = e.persistLocked(context.WithoutCancel(ctx))
	run := h.Clone()
	e.mu.Unlock()

	e.publish(domain.HapticFeedback{HotkeyID: id})

	runCtx, cancel := e.runContext(ctx)
	err := e.runActions(runCtx, run)
	cancel()

	record := domain.ExecutionRecord{HotkeyID: id, Timestamp: e.now(), Success: err == nil}
	result := domain.HotkeyExecuted{Hotkey: run, Success: err == nil}
	if err != nil {
		record.Error = err.Error()
		result.Error = err.Error()
		e.logger.Warn("hotkey failed", "hotkey_id", id, "err", err)
	} else {
		e.logger.Info("hotkey executed", "hotkey_id", id, "actions", len(run.Actions))
	}

	e.mu.Lock()
	e.history = append(e.history, record)
	e.mu.Unlock()

	e.publish(result)
	return err == nil
}

// runContext keeps ctx values but drops its cancellation, linking the run to
// the engine shutdown context instead.
func (e *Engine) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if e.shutdown == nil {
		return runCtx, cancel
	}
	stop := context.AfterFunc(e.shutdown, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

func (e *Engine) runActions(ctx context.Context, h *domain.Hotkey) error {
	for _, a := range h.SortedActions() {
		if a.Delay > 0 {
			if err := sleep(ctx, a.DelayDuration()); err != nil {
				return fmt.Errorf("action %s: %w", a.ID, err)
			}
		}

		started := time.Now()
		err := e.dispatch(ctx, a)
		ev := domain.ActionExecuted{HotkeyID: h.ID, Action: a, Duration: time.Since(started)}
		if err != nil {
			ev.Error = err.Error()
		}
		e.publish(ev)
		if err != nil {
			return fmt.Errorf("action %s (%s): %w", a.ID, a.Type, err)
		}
	}
	return nil
}

// dispatch is the single exhaustive match over action payloads.
func (e *Engine) dispatch(ctx context.Context, a domain.Action) error {
	payload, err := a.Payload()
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case *domain.SceneSwitch:
		if err := e.requireBroadcaster("switch scene"); err != nil {
			return err
		}
		return e.broadcaster.SetCurrentProgramScene(ctx, p.SceneName)

	case *domain.SourceVisibility:
		if err := e.requireBroadcaster("change source visibility"); err != nil {
			return err
		}
		visible := p.Visible == domain.VisibilityShow
		if p.Visible == domain.VisibilityToggle {
			current, err := e.broadcaster.GetSceneItemEnabled(ctx, p.SceneName, p.SourceName)
			if err != nil {
				return fmt.Errorf("failed to query %q in %q: %w", p.SourceName, p.SceneName, err)
			}
			visible = !current
		}
		return e.broadcaster.SetSceneItemEnabled(ctx, p.SceneName, p.SourceName, visible)

	case *domain.FilterToggle:
		if err := e.requireBroadcaster("toggle filter"); err != nil {
			return err
		}
		return e.broadcaster.SetSourceFilterEnabled(ctx, p.SourceName, p.FilterName, p.Enabled)

	case *domain.RecordingToggle:
		if err := e.requireBroadcaster("toggle recording"); err != nil {
			return err
		}
		active, err := e.broadcaster.GetRecordStatus(ctx)
		if err != nil {
			return fmt.Errorf("failed to query recording status: %w", err)
		}
		if active {
			return e.broadcaster.StopRecord(ctx)
		}
		return e.broadcaster.StartRecord(ctx)

	case *domain.StreamingToggle:
		if err := e.requireBroadcaster("toggle streaming"); err != nil {
			return err
		}
		active, err := e.broadcaster.GetStreamStatus(ctx)
		if err != nil {
			return fmt.Errorf("failed to query streaming status: %w", err)
		}
		if active {
			return e.broadcaster.StopStream(ctx)
		}
		return e.broadcaster.StartStream(ctx)

	case *domain.RawRequest:
		if err := e.requireBroadcaster("send " + p.RequestType); err != nil {
			return err
		}
		_, err := e.broadcaster.Call(ctx, p.RequestType, p.RequestData)
		return err

	case *domain.DeckSwitch:
		return e.switchToDeck(ctx, p.DeckID)

	case *domain.SubDeckSwitch:
		if p.SubDeckID != "" {
			if !e.SwitchToSubDeck(ctx, p.MainDeckID, p.SubDeckID) {
				return fmt.Errorf("%w: %q is not a sub-deck of %q", domain.ErrDeckNotFound, p.SubDeckID, p.MainDeckID)
			}
			return nil
		}
		if !e.SwitchBackToMainDeck(ctx, p.MainDeckID) {
			return fmt.Errorf("%w: %q", domain.ErrDeckNotFound, p.MainDeckID)
		}
		return nil

	case *domain.Delay:
		return sleep(ctx, time.Duration(p.Duration)*time.Millisecond)

	case *domain.AudioVolume:
		if e.mixer == nil {
			return fmt.Errorf("cannot set volume of %q: %w", p.SourceName, domain.ErrMixerUnavailable)
		}
		return e.mixer.SetSourceVolume(ctx, p.SourceName, p.Volume)

	case *domain.AudioMute:
		if e.mixer == nil {
			return fmt.Errorf("cannot mute %q: %w", p.SourceName, domain.ErrMixerUnavailable)
		}
		return e.mixer.SetSourceMute(ctx, p.SourceName, p.Muted)
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownActionType, a.Type)
}

func (e *Engine) requireBroadcaster(op string) error {
	if e.broadcaster == nil || !e.broadcaster.IsConnected() {
		return fmt.Errorf("cannot %s: %w", op, domain.ErrNotConnected)
	}
	return nil
}

// History returns a copy of the execution log, oldest first.
func (e *Engine) History() []domain.ExecutionRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.ExecutionRecord, len(e.history))
	copy(out, e.history)
	return out
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
