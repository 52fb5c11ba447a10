package tui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hotdeck/internal/presentation/tui"
	"github.com/aretw0/hotdeck/pkg/domain"
)

func TestGridMarkdown(t *testing.T) {
	deck := &domain.Deck{ID: "deck_1", Name: "Show|Main", Rows: 2, Columns: 2}
	hotkeys := []*domain.Hotkey{
		{ID: "hk_1", Name: "Intro", Enabled: true, DeckID: "deck_1", Position: &domain.Position{Row: 0, Col: 1}},
		{ID: "hk_2", Name: "Off", Enabled: false, DeckID: "deck_1", Position: &domain.Position{Row: 1, Col: 0}},
	}
	out := tui.GridMarkdown(domain.NewGrid("deck_1", deck, hotkeys))

	assert.Contains(t, out, "# Show\\|Main")
	assert.Contains(t, out, "| **0** | · | Intro |")
	assert.Contains(t, out, "| **1** | ~~Off~~ | · |")
	assert.NotContains(t, out, "sub-deck")
}

func TestHotkeysMarkdown(t *testing.T) {
	assert.Equal(t, "_no hotkeys_\n", tui.HotkeysMarkdown(nil))

	h := &domain.Hotkey{
		ID: "hk_1", Name: "Mute", Enabled: true,
		Triggers: []domain.Trigger{domain.NewKeyboardTrigger(domain.KeyEvent{Key: "m", Code: "KeyM", CtrlKey: true})},
		Actions:  []domain.Action{{ID: "a", Type: domain.ActionAudioMute}},
	}
	out := tui.HotkeysMarkdown([]*domain.Hotkey{h})
	assert.Contains(t, out, "`hk_1` | Mute | Ctrl+M | 1 | standalone |")
}

func TestDecksMarkdown(t *testing.T) {
	mains := []*domain.Deck{{ID: "m", Name: "Main", Rows: 4, Columns: 4}}
	subs := func(id string) []*domain.Deck {
		return []*domain.Deck{{ID: "s", Name: "FX", ParentDeckID: id}}
	}
	out := tui.DecksMarkdown(mains, subs, "m", map[string]string{"m": "s"})
	assert.Contains(t, out, "**Main** `m` 4×4 ◀ current")
	assert.Contains(t, out, "  - FX `s` (active)")
}

func TestStatsAndHistory(t *testing.T) {
	out := tui.StatsMarkdown(domain.Stats{TotalHotkeys: 3, EnabledHotkeys: 2, TotalExecutions: 5, AverageActionsPerHotkey: 1.5})
	assert.Contains(t, out, "| Hotkeys | 3 (2 enabled) |")
	assert.Contains(t, out, "| Current deck | None |")
	assert.Contains(t, out, "1.50")

	ts := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.ExecutionRecord{
		{HotkeyID: "old", Timestamp: ts, Success: true},
		{HotkeyID: "new", Timestamp: ts.Add(time.Second), Error: "boom"},
	}
	hist := tui.HistoryMarkdown(records, 1)
	assert.Contains(t, hist, "`new` | ✘ boom")
	assert.NotContains(t, hist, "old")
}

func TestRenderers(t *testing.T) {
	out, err := tui.Plain("# hi")
	require.NoError(t, err)
	assert.Equal(t, "# hi", out)

	render := tui.NewRenderer(60)
	out, err = render("# Deck\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck")

	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.True(t, strings.Count(buf.String(), "\n") >= 5)
}
