package runtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/hotdeck/internal/runtime"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, eng *runtime.Engine) (main, sub *domain.Deck) {
	t.Helper()
	ctx := context.Background()
	main, err := eng.CreateDeck(ctx, domain.DeckOptions{Name: "Show", Rows: 2, Columns: 3})
	require.NoError(t, err)
	sub, err = eng.CreateDeck(ctx, domain.DeckOptions{Name: "Audio", ParentDeckID: main.ID})
	require.NoError(t, err)
	eng.CreateHotkey(ctx, domain.HotkeyOptions{
		Name:     "Intro",
		DeckID:   main.ID,
		Position: &domain.Position{Row: 1, Col: 2},
		Triggers: []domain.Trigger{
			domain.NewMIDITrigger(domain.MIDIMessage{Type: domain.MIDIControlChange, Controller: 7}),
			domain.NewKeyboardTrigger(domain.KeyEvent{Key: "F1", Code: "F1"}),
		},
		Actions: []domain.Action{
			action(domain.ActionSourceVisibility, map[string]any{"sceneName": "Main", "sourceName": "Cam", "visible": "toggle"}),
			action(domain.ActionAudioVolume, map[string]any{"sourceName": "Music", "volume": 0.5}),
		},
	})
	eng.CreateHotkey(ctx, domain.HotkeyOptions{Name: "Loose"})
	require.True(t, eng.SwitchToSubDeck(ctx, main.ID, sub.ID))
	return main, sub
}

func TestExportImport_RoundTrip(t *testing.T) {
	src, _, _ := newTestEngine(t)
	seed(t, src)

	raw, err := json.Marshal(src.Export())
	require.NoError(t, err)

	var cfg domain.Configuration
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Equal(t, domain.ConfigurationVersion, cfg.Version)
	assert.False(t, cfg.ExportedAt.IsZero())

	dst, store, rec := newTestEngine(t)
	require.NoError(t, dst.Import(context.Background(), &cfg))

	assert.Equal(t, src.Decks(), dst.Decks())
	assert.Equal(t, src.ActiveSubDecks(), dst.ActiveSubDecks())
	require.Len(t, dst.Hotkeys(), 2)
	for i, h := range dst.Hotkeys() {
		want := src.Hotkeys()[i]
		assert.Equal(t, want.ID, h.ID)
		assert.Equal(t, want.Triggers, h.Triggers)
		assert.Equal(t, want.Position, h.Position)
		assert.Len(t, h.Actions, len(want.Actions))
	}

	assert.Equal(t, []domain.EventType{domain.EventConfigurationImported, domain.EventSubDeckSwitched}, rec.types())
	refresh := rec.last(domain.EventSubDeckSwitched).(domain.SubDeckSwitched)
	assert.True(t, refresh.Refresh)

	_, err = store.Get(context.Background(), ports.KeyHotkeys)
	assert.NoError(t, err, "import persists the snapshot")
}

func TestExport_IsDeepCopy(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	seed(t, eng)

	cfg := eng.Export()
	cfg.Hotkeys[0].Name = "mutated"
	cfg.Hotkeys[0].Actions[0].Data["sceneName"] = "mutated"
	cfg.ActiveSubDecks["x"] = "y"

	h := eng.Hotkeys()[0]
	assert.Equal(t, "Intro", h.Name)
	assert.Equal(t, "Main", h.Actions[0].Data["sceneName"])
	assert.Len(t, eng.ActiveSubDecks(), 1)
}

func TestImport_RejectsWithoutSideEffects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Configuration)
		want   error
	}{
		{"missing version", func(c *domain.Configuration) { c.Version = "" }, domain.ErrUnsupportedVersion},
		{"old major", func(c *domain.Configuration) { c.Version = "0.9" }, domain.ErrUnsupportedVersion},
		{"unknown action", func(c *domain.Configuration) {
			c.Hotkeys[0].Actions[0].Type = "teleport"
		}, domain.ErrUnknownActionType},
		{"dangling deck", func(c *domain.Configuration) { c.Hotkeys[0].DeckID = "deck_ghost" }, domain.ErrInvalidConfiguration},
		{"foreign active sub-deck", func(c *domain.Configuration) {
			c.ActiveSubDecks = map[string]string{"deck_ghost": c.Decks[1].ID}
		}, domain.ErrInvalidConfiguration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, _, _ := newTestEngine(t)
			seed(t, src)
			cfg := src.Export()
			tc.mutate(cfg)

			dst, _, rec := newTestEngine(t)
			keep := dst.CreateHotkey(context.Background(), domain.HotkeyOptions{Name: "Existing"})
			rec.reset()

			err := dst.Import(context.Background(), cfg)
			assert.ErrorIs(t, err, tc.want)

			hotkeys := dst.Hotkeys()
			require.Len(t, hotkeys, 1)
			assert.Equal(t, keep.ID, hotkeys[0].ID)
			assert.Empty(t, dst.Decks())
			assert.Empty(t, rec.types())
		})
	}
}

func TestImport_LegacyActionNames(t *testing.T) {
	doc := `{
		"version": "1.2",
		"decks": [],
		"hotkeys": [{
			"id": "hk_legacy",
			"name": "Legacy",
			"enabled": true,
			"order": 0,
			"triggerCount": 0,
			"triggers": [],
			"actions": [{"id": "act_1", "type": "obs_scene_switch", "order": 0, "data": {"sceneName": "Intro"}}]
		}]
	}`
	var cfg domain.Configuration
	require.NoError(t, json.Unmarshal([]byte(doc), &cfg))

	eng, _, _ := newTestEngine(t)
	require.NoError(t, eng.Import(context.Background(), &cfg))
	h, ok := eng.Hotkey("hk_legacy")
	require.True(t, ok)
	assert.Equal(t, domain.ActionSceneSwitch, h.Actions[0].Type)
	assert.NotNil(t, h.Triggers)
}

// failingStore accepts reads and rejects every write.
type failingStore struct {
	*memory.Store
}

var errDiskFull = errors.New("disk full")

func (failingStore) Set(context.Context, string, []byte) error { return errDiskFull }

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	rec := &recorder{}
	eng := runtime.NewEngine(failingStore{memory.NewStore()}, runtime.WithPublisher(rec))
	ctx := context.Background()

	h := eng.CreateHotkey(ctx, domain.HotkeyOptions{Name: "Survivor"})
	got, ok := eng.Hotkey(h.ID)
	require.True(t, ok)
	assert.Equal(t, "Survivor", got.Name)
	assert.Equal(t, []domain.EventType{domain.EventHotkeyCreated}, rec.types())

	cfg := eng.Export()
	err := eng.Import(ctx, cfg)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Len(t, eng.Hotkeys(), 1)
}
