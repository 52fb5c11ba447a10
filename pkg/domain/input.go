package domain

// MIDI message types as delivered by trigger sources.
const (
	MIDIControlChange = "controlchange"
	MIDINoteOn        = "noteon"
	MIDINoteOff       = "noteoff"
)

// InputEvent is a normalized event delivered by a trigger source.
// It is either a MIDIMessage or a KeyEvent.
type InputEvent interface {
	inputEvent()
}

// MIDIMessage is a normalized MIDI message.
type MIDIMessage struct {
	Type       string `json:"type"`
	Channel    int    `json:"channel"`
	Controller int    `json:"controller,omitempty"`
	Note       int    `json:"note,omitempty"`
	Value      int    `json:"value"`
}

func (MIDIMessage) inputEvent() {}

// ControllerOrNote returns the controller number, falling back to the note number
// when the controller is zero.
func (m MIDIMessage) ControllerOrNote() int {
	if m.Controller != 0 {
		return m.Controller
	}
	return m.Note
}

// KeyEvent is a native keydown event.
type KeyEvent struct {
	Key      string `json:"key"`
	Code     string `json:"code"`
	CtrlKey  bool   `json:"ctrlKey"`
	ShiftKey bool   `json:"shiftKey"`
	AltKey   bool   `json:"altKey"`
	MetaKey  bool   `json:"metaKey"`
}

func (KeyEvent) inputEvent() {}
