package simulator_test

import (
	"context"
	"testing"

	"github.com/aretw0/hotdeck/internal/runtime"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/adapters/simulator"
	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudio_Lenient(t *testing.T) {
	ctx := context.Background()
	s := simulator.New()

	require.NoError(t, s.SetCurrentProgramScene(ctx, "Anything"))
	assert.Equal(t, "Anything", s.ProgramScene())

	visible, err := s.GetSceneItemEnabled(ctx, "Anything", "Cam")
	require.NoError(t, err)
	assert.False(t, visible)
	require.NoError(t, s.SetSceneItemEnabled(ctx, "Anything", "Cam", true))
	assert.True(t, s.Visible("Anything", "Cam"))
}

func TestStudio_StrictScenes(t *testing.T) {
	ctx := context.Background()
	s := simulator.New(simulator.WithScene("Main", "Cam", "Mic"), simulator.WithScene("BRB"))
	assert.Equal(t, "Main", s.ProgramScene())

	assert.Error(t, s.SetCurrentProgramScene(ctx, "Missing"))
	_, err := s.GetSceneItemEnabled(ctx, "Main", "Overlay")
	assert.ErrorContains(t, err, `source "Overlay" not found in scene "Main"`)

	visible, err := s.GetSceneItemEnabled(ctx, "Main", "Cam")
	require.NoError(t, err)
	assert.True(t, visible)
}

func TestStudio_Outputs(t *testing.T) {
	ctx := context.Background()
	s := simulator.New()

	require.NoError(t, s.StartRecord(ctx))
	assert.Error(t, s.StartRecord(ctx), "already active")
	active, err := s.GetRecordStatus(ctx)
	require.NoError(t, err)
	assert.True(t, active)
	require.NoError(t, s.StopRecord(ctx))

	require.NoError(t, s.StartStream(ctx))
	assert.True(t, s.Streaming())

	resp, err := s.Call(ctx, "GetStreamStatus", nil)
	require.NoError(t, err)
	assert.Equal(t, true, resp["outputActive"])

	_, err = s.Call(ctx, "SaveReplayBuffer", map[string]any{"x": 1})
	require.NoError(t, err)
	require.Len(t, s.Requests(), 2)
	assert.Equal(t, "SaveReplayBuffer", s.Requests()[1].Type)
}

func TestStudio_Disconnected(t *testing.T) {
	ctx := context.Background()
	s := simulator.New(simulator.WithDisconnected())
	assert.False(t, s.IsConnected())
	assert.ErrorIs(t, s.SetCurrentProgramScene(ctx, "Main"), domain.ErrNotConnected)

	s.SetConnected(true)
	assert.NoError(t, s.SetCurrentProgramScene(ctx, "Main"))
}

func TestStudio_DrivesEngine(t *testing.T) {
	ctx := context.Background()
	s := simulator.New(simulator.WithScene("Main", "Cam"))
	eng := runtime.NewEngine(memory.NewStore(), runtime.WithBroadcaster(s), runtime.WithMixer(s))

	h := eng.CreateHotkey(ctx, domain.HotkeyOptions{Actions: []domain.Action{
		{Type: domain.ActionSourceVisibility, Data: map[string]any{"sceneName": "Main", "sourceName": "Cam", "visible": "toggle"}},
		{Type: domain.ActionFilterToggle, Data: map[string]any{"sourceName": "Cam", "filterName": "Blur", "enabled": true}},
		{Type: domain.ActionAudioVolume, Data: map[string]any{"sourceName": "Music", "volume": 0.3}},
		{Type: domain.ActionAudioMute, Data: map[string]any{"sourceName": "Mic", "muted": true}},
		{Type: domain.ActionStreamingToggle, Data: map[string]any{}},
	}})
	require.True(t, eng.Execute(ctx, h.ID))

	assert.False(t, s.Visible("Main", "Cam"))
	assert.True(t, s.FilterEnabled("Cam", "Blur"))
	vol, ok := s.Volume("Music")
	assert.True(t, ok)
	assert.InDelta(t, 0.3, vol, 1e-9)
	assert.True(t, s.Muted("Mic"))
	assert.True(t, s.Streaming())

	missing := eng.CreateHotkey(ctx, domain.HotkeyOptions{Actions: []domain.Action{
		{Type: domain.ActionSourceVisibility, Data: map[string]any{"sceneName": "Main", "sourceName": "Ghost", "visible": "toggle"}},
	}})
	assert.False(t, eng.Execute(ctx, missing.ID))
	history := eng.History()
	assert.Contains(t, history[len(history)-1].Error, `source "Ghost" not found`)
}
