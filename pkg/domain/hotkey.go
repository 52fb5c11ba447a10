package domain

import (
	"slices"
	"time"
)

// Position is a slot in a deck grid, zero-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hotkey binds triggers to an ordered sequence of actions.
// Position is set if and only if DeckID is set.
type Hotkey struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Triggers      []Trigger  `json:"triggers"`
	Actions       []Action   `json:"actions"`
	Enabled       bool       `json:"enabled"`
	Order         int        `json:"order"`
	DeckID        string     `json:"deckId,omitempty"`
	Position      *Position  `json:"position,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastTriggered *time.Time `json:"lastTriggered,omitempty"`
	TriggerCount  int        `json:"triggerCount"`
}

// IsStandalone reports whether the hotkey is not placed on any deck.
func (h *Hotkey) IsStandalone() bool {
	return h.DeckID == ""
}

// Place puts the hotkey on a deck slot.
func (h *Hotkey) Place(deckID string, pos Position) {
	h.DeckID = deckID
	h.Position = &pos
}

// Detach removes the hotkey from its deck.
func (h *Hotkey) Detach() {
	h.DeckID = ""
	h.Position = nil
}

// Trigger returns the trigger of the given kind, if any.
func (h *Hotkey) Trigger(kind TriggerKind) (Trigger, bool) {
	for _, t := range h.Triggers {
		if t.Kind == kind {
			return t, true
		}
	}
	return Trigger{}, false
}

// SetTrigger replaces any trigger of the same kind and appends t.
func (h *Hotkey) SetTrigger(t Trigger) {
	h.RemoveTrigger(t.Kind)
	h.Triggers = append(h.Triggers, t)
}

// RemoveTrigger drops the trigger of the given kind. It reports whether one was present.
func (h *Hotkey) RemoveTrigger(kind TriggerKind) bool {
	before := len(h.Triggers)
	h.Triggers = slices.DeleteFunc(h.Triggers, func(t Trigger) bool { return t.Kind == kind })
	return len(h.Triggers) != before
}

// MatchesMIDI reports whether any midi trigger matches the message.
func (h *Hotkey) MatchesMIDI(m MIDIMessage) bool {
	for _, t := range h.Triggers {
		if t.Kind == TriggerMIDI && t.MIDI != nil && t.MIDI.Matches(m) {
			return true
		}
	}
	return false
}

// MatchesKey reports whether any keyboard trigger matches the event.
func (h *Hotkey) MatchesKey(ev KeyEvent) bool {
	for _, t := range h.Triggers {
		if t.Kind == TriggerKeyboard && t.Keyboard != nil && t.Keyboard.Matches(ev) {
			return true
		}
	}
	return false
}

// SortedActions returns the actions ordered by their Order field.
func (h *Hotkey) SortedActions() []Action {
	out := slices.Clone(h.Actions)
	slices.SortStableFunc(out, func(a, b Action) int { return a.Order - b.Order })
	return out
}

// Clone returns a deep copy of the hotkey.
func (h *Hotkey) Clone() *Hotkey {
	if h == nil {
		return nil
	}
	out := *h
	if h.Triggers != nil {
		out.Triggers = make([]Trigger, len(h.Triggers))
		for i, t := range h.Triggers {
			out.Triggers[i] = t.Clone()
		}
	}
	if h.Actions != nil {
		out.Actions = make([]Action, len(h.Actions))
		for i, a := range h.Actions {
			out.Actions[i] = a.Clone()
		}
	}
	if h.Position != nil {
		p := *h.Position
		out.Position = &p
	}
	if h.LastTriggered != nil {
		ts := *h.LastTriggered
		out.LastTriggered = &ts
	}
	return &out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
