package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMIDITrigger_MatchesIgnoresValue(t *testing.T) {
	trig := domain.NewMIDITrigger(domain.MIDIMessage{Type: domain.MIDIControlChange, Channel: 0, Controller: 7, Value: 64})

	assert.True(t, trig.MIDI.Matches(domain.MIDIMessage{Type: domain.MIDIControlChange, Channel: 0, Controller: 7, Value: 127}))
	assert.False(t, trig.MIDI.Matches(domain.MIDIMessage{Type: domain.MIDIControlChange, Channel: 1, Controller: 7}))
	assert.False(t, trig.MIDI.Matches(domain.MIDIMessage{Type: domain.MIDINoteOn, Channel: 0, Note: 7}))
}

func TestMIDITrigger_NoteFallsBackWhenControllerIsZero(t *testing.T) {
	trig := domain.NewMIDITrigger(domain.MIDIMessage{Type: domain.MIDINoteOn, Channel: 9, Note: 60, Value: 100})

	assert.Equal(t, 60, trig.MIDI.Controller)
	assert.Equal(t, "Note 60 (CH10)", trig.Description())
	assert.True(t, trig.MIDI.Matches(domain.MIDIMessage{Type: domain.MIDINoteOn, Channel: 9, Note: 60}))
}

// Meta is recorded but not compared; the key text is ignored in favour of the code.
func TestKeyboardTrigger_MatchingAsymmetry(t *testing.T) {
	trig := domain.NewKeyboardTrigger(domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true, MetaKey: true})

	cases := []struct {
		name string
		ev   domain.KeyEvent
		want bool
	}{
		{"exact", domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true, MetaKey: true}, true},
		{"meta released", domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true}, true},
		{"different key text", domain.KeyEvent{Key: "S", Code: "KeyS", CtrlKey: true}, true},
		{"shift added", domain.KeyEvent{Key: "S", Code: "KeyS", CtrlKey: true, ShiftKey: true}, false},
		{"ctrl missing", domain.KeyEvent{Key: "s", Code: "KeyS"}, false},
		{"other code", domain.KeyEvent{Key: "d", Code: "KeyD", CtrlKey: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trig.Keyboard.Matches(tc.ev))
		})
	}
}

func TestTrigger_JSONShape(t *testing.T) {
	trig := domain.NewKeyboardTrigger(domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true})

	b, err := json.Marshal(trig)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "keyboard", raw["type"])
	data, ok := raw["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "KeyS", data["code"])
	assert.Equal(t, true, data["ctrlKey"])

	var back domain.Trigger
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, trig, back)
}

func TestTrigger_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown kind", `{"type":"joystick","data":{}}`},
		{"missing data", `{"type":"midi"}`},
		{"null data", `{"type":"keyboard","data":null}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var trig domain.Trigger
			require.NoError(t, json.Unmarshal([]byte(tc.in), &trig))
			assert.False(t, trig.Valid())
		})
	}
}

func TestTrigger_CloneIsDeep(t *testing.T) {
	trig := domain.NewClickTrigger("press")
	c := trig.Clone()
	c.Click.Description = "changed"
	assert.Equal(t, "press", trig.Description())
}
