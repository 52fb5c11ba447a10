package configfile_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hotdeck/internal/runtime"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/configfile"
	"github.com/aretw0/hotdeck/pkg/domain"
)

func sample(t *testing.T) *domain.Configuration {
	t.Helper()
	ctx := context.Background()
	eng := runtime.NewEngine(memory.NewStore(), runtime.WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
	main, err := eng.CreateDeck(ctx, domain.DeckOptions{Name: "Show", Rows: 2, Columns: 2})
	require.NoError(t, err)
	sub, err := eng.CreateDeck(ctx, domain.DeckOptions{Name: "FX", ParentDeckID: main.ID})
	require.NoError(t, err)
	require.True(t, eng.SwitchToSubDeck(ctx, main.ID, sub.ID))
	eng.CreateHotkey(ctx, domain.HotkeyOptions{
		Name:     "Intro",
		DeckID:   main.ID,
		Position: &domain.Position{Row: 1, Col: 0},
		Triggers: []domain.Trigger{
			domain.NewMIDITrigger(domain.MIDIMessage{Type: domain.MIDIControlChange, Channel: 2, Controller: 7}),
			domain.NewKeyboardTrigger(domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true}),
		},
		Actions: []domain.Action{
			{Type: domain.ActionSceneSwitch, Data: map[string]any{"sceneName": "Intro"}},
			{Type: domain.ActionAudioVolume, Data: map[string]any{"sourceName": "Mic", "volume": 0.5}, Delay: 100},
		},
	})
	return eng.Export()
}

func TestFormat(t *testing.T) {
	assert.Equal(t, configfile.YAML, configfile.FormatFromPath("show.YML"))
	assert.Equal(t, configfile.YAML, configfile.FormatFromPath("show.yaml"))
	assert.Equal(t, configfile.JSON, configfile.FormatFromPath("show.json"))
	assert.Equal(t, configfile.JSON, configfile.FormatFromPath("show"))

	f, err := configfile.ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, configfile.YAML, f)
	_, err = configfile.ParseFormat("toml")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []configfile.Format{configfile.JSON, configfile.YAML} {
		t.Run(string(format), func(t *testing.T) {
			cfg := sample(t)
			var buf bytes.Buffer
			require.NoError(t, configfile.Encode(&buf, cfg, format))

			got, err := configfile.Decode(&buf, format)
			require.NoError(t, err)
			require.NoError(t, got.Validate())

			assert.Equal(t, cfg.Version, got.Version)
			assert.True(t, cfg.ExportedAt.Equal(got.ExportedAt))
			assert.Equal(t, cfg.ActiveSubDecks, got.ActiveSubDecks)
			require.Len(t, got.Hotkeys, 1)
			h := got.Hotkeys[0]
			assert.Equal(t, cfg.Hotkeys[0].Triggers, h.Triggers)
			assert.Equal(t, cfg.Hotkeys[0].Position, h.Position)
			require.Len(t, h.Actions, 2)
			assert.Equal(t, int64(100), h.Actions[1].Delay)
			assert.InDelta(t, 0.5, h.Actions[1].Data["volume"], 1e-9)

			eng := runtime.NewEngine(memory.NewStore())
			require.NoError(t, eng.Import(context.Background(), got))
			assert.Equal(t, 1, eng.Stats().TotalHotkeys)
		})
	}
}

func TestYAMLShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, configfile.Encode(&buf, sample(t), configfile.YAML))
	out := buf.String()
	assert.Contains(t, out, "version: \"1.0\"")
	assert.Contains(t, out, "type: midi")
	assert.Contains(t, out, "messageType: controlchange")
	assert.Contains(t, out, "sceneName: Intro")
}

func TestDecodeHandWrittenYAML(t *testing.T) {
	doc := `
version: "1.0"
decks:
  - id: deck_a
    name: Pads
    rows: 1
    columns: 2
    enabled: true
hotkeys:
  - id: hk_a
    name: BRB
    enabled: true
    deckId: deck_a
    position: {row: 0, col: 1}
    triggers:
      - type: keyboard
        data: {key: F8, code: F8}
    actions:
      - id: act_a
        type: obs_scene_switch
        data: {sceneName: BRB}
activeSubDecks: {}
`
	cfg, err := configfile.Decode(strings.NewReader(doc), configfile.YAML)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	eng := runtime.NewEngine(memory.NewStore())
	require.NoError(t, eng.Import(context.Background(), cfg))
	h, ok := eng.Hotkey("hk_a")
	require.True(t, ok)
	kb, ok := h.Trigger(domain.TriggerKeyboard)
	require.True(t, ok)
	assert.Equal(t, "F8", kb.Keyboard.Code)
}

func TestDecodeErrors(t *testing.T) {
	_, err := configfile.Decode(strings.NewReader("version: [unclosed"), configfile.YAML)
	assert.Error(t, err)
	_, err = configfile.Decode(strings.NewReader("{"), configfile.JSON)
	assert.Error(t, err)
	_, err = configfile.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := sample(t)
	for _, name := range []string{"out/show.json", "out/show.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, configfile.Save(path, cfg))
		got, err := configfile.Load(path)
		require.NoError(t, err, name)
		assert.Len(t, got.Decks, 2, name)
	}
}
