package domain

import (
	"encoding/json"
	"fmt"
)

// TriggerKind is the closed set of trigger kinds.
type TriggerKind string

const (
	TriggerMIDI     TriggerKind = "midi"
	TriggerKeyboard TriggerKind = "keyboard"
	TriggerClick    TriggerKind = "click"
)

// Valid reports whether k is one of the known trigger kinds.
func (k TriggerKind) Valid() bool {
	switch k {
	case TriggerMIDI, TriggerKeyboard, TriggerClick:
		return true
	}
	return false
}

// MIDITrigger is the payload of a "midi" trigger.
type MIDITrigger struct {
	MessageType string `json:"messageType"`
	Channel     int    `json:"channel"`
	Controller  int    `json:"controller"`
	Value       int    `json:"value"`
	Description string `json:"description,omitempty"`
}

// Matches compares message type, channel and controller-or-note. The value is ignored.
func (t *MIDITrigger) Matches(m MIDIMessage) bool {
	return t.MessageType == m.Type &&
		t.Channel == m.Channel &&
		t.Controller == m.ControllerOrNote()
}

// KeyboardTrigger is the payload of a "keyboard" trigger.
type KeyboardTrigger struct {
	Key         string `json:"key"`
	Code        string `json:"code"`
	CtrlKey     bool   `json:"ctrlKey"`
	ShiftKey    bool   `json:"shiftKey"`
	AltKey      bool   `json:"altKey"`
	MetaKey     bool   `json:"metaKey"`
	Description string `json:"description,omitempty"`
}

// Matches compares the physical code and the ctrl/shift/alt modifiers.
// Key and MetaKey are recorded for display only and never compared.
func (t *KeyboardTrigger) Matches(ev KeyEvent) bool {
	return t.Code == ev.Code &&
		t.CtrlKey == ev.CtrlKey &&
		t.ShiftKey == ev.ShiftKey &&
		t.AltKey == ev.AltKey
}

// ClickTrigger is the payload of a "click" trigger. It never matches hardware input.
type ClickTrigger struct {
	Description string `json:"description,omitempty"`
}

// Trigger is a tagged union: exactly the field matching Kind is set.
type Trigger struct {
	Kind     TriggerKind
	MIDI     *MIDITrigger
	Keyboard *KeyboardTrigger
	Click    *ClickTrigger
}

// NewMIDITrigger builds a midi trigger from a captured message.
func NewMIDITrigger(m MIDIMessage) Trigger {
	return Trigger{
		Kind: TriggerMIDI,
		MIDI: &MIDITrigger{
			MessageType: m.Type,
			Channel:     m.Channel,
			Controller:  m.ControllerOrNote(),
			Value:       m.Value,
			Description: DescribeMIDI(m),
		},
	}
}

// NewKeyboardTrigger builds a keyboard trigger from a captured keydown.
func NewKeyboardTrigger(ev KeyEvent) Trigger {
	return Trigger{
		Kind: TriggerKeyboard,
		Keyboard: &KeyboardTrigger{
			Key:         ev.Key,
			Code:        ev.Code,
			CtrlKey:     ev.CtrlKey,
			ShiftKey:    ev.ShiftKey,
			AltKey:      ev.AltKey,
			MetaKey:     ev.MetaKey,
			Description: DescribeKey(ev),
		},
	}
}

// NewClickTrigger builds a click trigger.
func NewClickTrigger(description string) Trigger {
	return Trigger{Kind: TriggerClick, Click: &ClickTrigger{Description: description}}
}

// Valid reports whether the kind is known and its payload is present.
func (t Trigger) Valid() bool {
	switch t.Kind {
	case TriggerMIDI:
		return t.MIDI != nil
	case TriggerKeyboard:
		return t.Keyboard != nil
	case TriggerClick:
		return t.Click != nil
	}
	return false
}

// Description returns the human readable form recorded with the trigger.
func (t Trigger) Description() string {
	switch t.Kind {
	case TriggerMIDI:
		if t.MIDI != nil {
			return t.MIDI.Description
		}
	case TriggerKeyboard:
		if t.Keyboard != nil {
			return t.Keyboard.Description
		}
	case TriggerClick:
		if t.Click != nil {
			return t.Click.Description
		}
	}
	return ""
}

// Clone returns a copy that shares no pointers with t.
func (t Trigger) Clone() Trigger {
	out := Trigger{Kind: t.Kind}
	if t.MIDI != nil {
		m := *t.MIDI
		out.MIDI = &m
	}
	if t.Keyboard != nil {
		k := *t.Keyboard
		out.Keyboard = &k
	}
	if t.Click != nil {
		c := *t.Click
		out.Click = &c
	}
	return out
}

type triggerJSON struct {
	Type TriggerKind     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes the trigger as {"type": kind, "data": payload}.
func (t Trigger) MarshalJSON() ([]byte, error) {
	var data any
	switch t.Kind {
	case TriggerMIDI:
		data = t.MIDI
	case TriggerKeyboard:
		data = t.Keyboard
	case TriggerClick:
		data = t.Click
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidTrigger, t.Kind)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(triggerJSON{Type: t.Kind, Data: raw})
}

// UnmarshalJSON decodes {"type": kind, "data": payload}.
// Unknown kinds and missing data decode into an invalid Trigger instead of failing,
// so that callers can report them through Valid.
func (t *Trigger) UnmarshalJSON(b []byte) error {
	var raw triggerJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = Trigger{Kind: raw.Type}
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return nil
	}

	switch raw.Type {
	case TriggerMIDI:
		t.MIDI = &MIDITrigger{}
		return json.Unmarshal(raw.Data, t.MIDI)
	case TriggerKeyboard:
		t.Keyboard = &KeyboardTrigger{}
		return json.Unmarshal(raw.Data, t.Keyboard)
	case TriggerClick:
		t.Click = &ClickTrigger{}
		return json.Unmarshal(raw.Data, t.Click)
	}
	return nil
}
