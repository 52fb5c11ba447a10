package runtime

import (
	"context"
	"time"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// learningState is the Listening state. gen identifies the cycle so that a
// debounce timer firing after stop or restart is ignored.
type learningState struct {
	gen      uint64
	target   string
	callback domain.LearnFunc
	pending  *domain.KeyEvent
	timer    *time.Timer
}

// StartLearning enters Listening. The next MIDI message, or the last keydown
// of a chord once the debounce elapses, is turned into a trigger and passed
// to cb exactly once. target is informational and may be empty.
//
// It fails with ErrLearningInProgress while another cycle is listening.
func (e *Engine) StartLearning(target string, cb domain.LearnFunc) error {
	e.mu.Lock()
	if e.learning != nil {
		e.mu.Unlock()
		return domain.ErrLearningInProgress
	}
	e.learningGen++
	e.learning = &learningState{gen: e.learningGen, target: target, callback: cb}
	e.mu.Unlock()

	e.logger.Debug("learning started", "hotkey_id", target)
	e.publish(domain.LearningStarted{TargetHotkeyID: target})
	return nil
}

// LearnTrigger starts a learning cycle whose captured trigger is added to hotkeyID.
func (e *Engine) LearnTrigger(ctx context.Context, hotkeyID string) error {
	if _, ok := e.Hotkey(hotkeyID); !ok {
		return domain.ErrHotkeyNotFound
	}
	bindCtx := context.WithoutCancel(ctx)
	return e.StartLearning(hotkeyID, func(t domain.Trigger) {
		if !e.AddTrigger(bindCtx, hotkeyID, t) {
			e.logger.Warn("learned trigger not bound", "hotkey_id", hotkeyID, "kind", t.Kind)
		}
	})
}

// StopLearning cancels the active cycle without invoking its callback.
// It is idempotent and always publishes learningStopped.
func (e *Engine) StopLearning() {
	e.mu.Lock()
	var target string
	if l := e.learning; l != nil {
		if l.timer != nil {
			l.timer.Stop()
		}
		target = l.target
		e.learning = nil
	}
	e.mu.Unlock()

	e.publish(domain.LearningStopped{TargetHotkeyID: target})
}

// IsLearning reports whether a cycle is listening.
func (e *Engine) IsLearning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.learning != nil
}

// learnMIDILocked captures m immediately. The caller holds mu and must call
// the returned completion after unlocking.
func (e *Engine) learnMIDILocked(m domain.MIDIMessage) func() {
	l := e.learning
	e.learning = nil
	if l.timer != nil {
		l.timer.Stop()
	}
	return e.completion(l, domain.NewMIDITrigger(m))
}

// learnKeyLocked records ev and restarts the debounce. The caller holds mu.
func (e *Engine) learnKeyLocked(ev domain.KeyEvent) {
	l := e.learning
	l.pending = &ev
	if l.timer != nil {
		l.timer.Stop()
	}
	gen := l.gen
	l.timer = time.AfterFunc(e.debounce, func() { e.finishKeyLearning(gen) })
}

func (e *Engine) finishKeyLearning(gen uint64) {
	e.mu.Lock()
	l := e.learning
	if l == nil || l.gen != gen || l.pending == nil {
		e.mu.Unlock()
		return
	}
	e.learning = nil
	done := e.completion(l, domain.NewKeyboardTrigger(*l.pending))
	e.mu.Unlock()

	done()
}

func (e *Engine) completion(l *learningState, t domain.Trigger) func() {
	return func() {
		e.logger.Debug("trigger learned", "hotkey_id", l.target, "kind", t.Kind, "description", t.Description())
		if l.callback != nil {
			l.callback(t.Clone())
		}
		e.publish(domain.LearningStopped{TargetHotkeyID: l.target, Trigger: &t})
	}
}
