package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotkey_SetTriggerReplacesSameKind(t *testing.T) {
	h := &domain.Hotkey{ID: "hk_1"}
	h.SetTrigger(domain.NewMIDITrigger(domain.MIDIMessage{Type: domain.MIDIControlChange, Controller: 1}))
	h.SetTrigger(domain.NewClickTrigger("tap"))
	h.SetTrigger(domain.NewMIDITrigger(domain.MIDIMessage{Type: domain.MIDIControlChange, Controller: 2}))

	require.Len(t, h.Triggers, 2)
	midi, ok := h.Trigger(domain.TriggerMIDI)
	require.True(t, ok)
	assert.Equal(t, 2, midi.MIDI.Controller)

	assert.True(t, h.RemoveTrigger(domain.TriggerClick))
	assert.False(t, h.RemoveTrigger(domain.TriggerClick))
	assert.Len(t, h.Triggers, 1)
}

func TestHotkey_PlaceAndDetach(t *testing.T) {
	h := &domain.Hotkey{}
	assert.True(t, h.IsStandalone())

	h.Place("deck_1", domain.Position{Row: 1, Col: 2})
	assert.False(t, h.IsStandalone())
	assert.Equal(t, &domain.Position{Row: 1, Col: 2}, h.Position)

	h.Detach()
	assert.True(t, h.IsStandalone())
	assert.Nil(t, h.Position)
}

func TestHotkey_SortedActions(t *testing.T) {
	h := &domain.Hotkey{Actions: []domain.Action{
		{ID: "c", Order: 2},
		{ID: "a", Order: 0},
		{ID: "b", Order: 1},
	}}
	sorted := h.SortedActions()
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
	assert.Equal(t, "c", h.Actions[0].ID, "original order untouched")
}

func TestHotkey_CloneIsDeep(t *testing.T) {
	now := time.Now().UTC()
	h := &domain.Hotkey{
		ID:            "hk_1",
		Triggers:      []domain.Trigger{domain.NewClickTrigger("tap")},
		Actions:       []domain.Action{{ID: "a", Type: domain.ActionDelay, Data: map[string]any{"duration": 10}}},
		Position:      &domain.Position{Row: 0, Col: 0},
		DeckID:        "deck_1",
		LastTriggered: &now,
	}
	c := h.Clone()
	c.Triggers[0].Click.Description = "x"
	c.Actions[0].Data["duration"] = 20
	c.Position.Row = 3
	*c.LastTriggered = now.Add(time.Hour)

	assert.Equal(t, "tap", h.Triggers[0].Description())
	assert.Equal(t, 10, h.Actions[0].Data["duration"])
	assert.Equal(t, 0, h.Position.Row)
	assert.Equal(t, now, *h.LastTriggered)
}

func TestHotkey_MatchesOnlyOwnKind(t *testing.T) {
	h := &domain.Hotkey{}
	h.SetTrigger(domain.NewKeyboardTrigger(domain.KeyEvent{Code: "KeyA"}))
	assert.True(t, h.MatchesKey(domain.KeyEvent{Code: "KeyA"}))
	assert.False(t, h.MatchesMIDI(domain.MIDIMessage{Type: domain.MIDINoteOn}))
}

func TestDeck_DerivedSubDeckFlag(t *testing.T) {
	d := domain.Deck{ID: "deck_2", Rows: 2, Columns: 3, ParentDeckID: "deck_1"}
	assert.True(t, d.IsSubDeck())
	assert.True(t, d.Contains(domain.Position{Row: 1, Col: 2}))
	assert.False(t, d.Contains(domain.Position{Row: 2, Col: 0}))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"isSubDeck":true`)

	var back domain.Deck
	require.NoError(t, json.Unmarshal([]byte(`{"id":"deck_3","rows":1,"columns":1,"isSubDeck":true}`), &back))
	assert.False(t, back.IsSubDeck(), "isSubDeck is derived from parentDeckId only")
}
