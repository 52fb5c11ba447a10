package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hotdeck/internal/runtime"
	"github.com/aretw0/hotdeck/pkg/adapters/http"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/adapters/simulator"
	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/observability"
)

type fixture struct {
	eng     *runtime.Engine
	bus     *observability.Bus
	studio  *simulator.Studio
	handler nethttp.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := observability.NewBus()
	studio := simulator.New()
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	t.Cleanup(metrics.Attach(bus))

	eng := runtime.NewEngine(memory.NewStore(),
		runtime.WithPublisher(bus),
		runtime.WithBroadcaster(studio),
		runtime.WithMixer(studio),
		runtime.WithLearningDebounce(10*time.Millisecond),
	)
	require.NoError(t, eng.Load(context.Background()))

	return &fixture{
		eng:    eng,
		bus:    bus,
		studio: studio,
		handler: http.NewHandler(http.Options{
			Engine:  eng,
			Events:  bus,
			Metrics: reg,
			Version: "1.2.3\n",
		}),
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthAndInfo(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "GET", "/health", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	info := decode[map[string]string](t, f.do(t, "GET", "/info", nil))
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, domain.ConfigurationVersion, info["configuration_version"])

	w = f.do(t, "OPTIONS", "/hotkeys", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHotkeyLifecycle(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "POST", "/hotkeys", map[string]any{
		"name": "Intro",
		"actions": []map[string]any{
			{"type": "scene_switch", "data": map[string]any{"sceneName": "Intro"}},
		},
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	h := decode[domain.Hotkey](t, w)
	assert.True(t, h.Enabled)
	require.Len(t, h.Actions, 1)

	w = f.do(t, "PATCH", "/hotkeys/"+h.ID, map[string]any{"name": "Opening"})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "Opening", decode[domain.Hotkey](t, w).Name)

	w = f.do(t, "POST", "/hotkeys/"+h.ID+"/execute", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, "Intro", f.studio.ProgramScene())

	w = f.do(t, "POST", "/hotkeys/"+h.ID+"/triggers", map[string]any{
		"type": "midi", "data": map[string]any{"messageType": "noteon", "channel": 9, "controller": 36},
	})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[domain.Hotkey](t, w).Triggers, 1)

	w = f.do(t, "POST", "/input/midi", domain.MIDIMessage{Type: domain.MIDINoteOn, Channel: 9, Note: 36, Value: 90})
	assert.JSONEq(t, `{"executed":1}`, w.Body.String())

	w = f.do(t, "DELETE", "/hotkeys/"+h.ID+"/triggers/midi", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	w = f.do(t, "DELETE", "/hotkeys/"+h.ID+"/triggers/midi", nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)

	w = f.do(t, "POST", "/hotkeys/"+h.ID+"/duplicate", nil)
	require.Equal(t, nethttp.StatusCreated, w.Code)
	assert.Equal(t, "Opening (Copy)", decode[domain.Hotkey](t, w).Name)

	w = f.do(t, "DELETE", "/hotkeys/"+h.ID, nil)
	assert.Equal(t, nethttp.StatusNoContent, w.Code)
	assert.Equal(t, nethttp.StatusNotFound, f.do(t, "GET", "/hotkeys/"+h.ID, nil).Code)
	assert.Equal(t, nethttp.StatusNotFound, f.do(t, "DELETE", "/hotkeys/"+h.ID, nil).Code)
}

func TestHotkeyActions(t *testing.T) {
	f := newFixture(t)
	h := f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{})

	w := f.do(t, "POST", "/hotkeys/"+h.ID+"/actions", map[string]any{"type": "audio_mute", "data": map[string]any{"sourceName": "Mic", "muted": true}})
	require.Equal(t, nethttp.StatusCreated, w.Code)
	first := decode[domain.Action](t, w)

	w = f.do(t, "POST", "/hotkeys/"+h.ID+"/actions", map[string]any{"type": "delay", "data": map[string]any{"duration": 1}})
	require.Equal(t, nethttp.StatusCreated, w.Code)
	second := decode[domain.Action](t, w)

	w = f.do(t, "POST", "/hotkeys/"+h.ID+"/actions", map[string]any{"type": "teleport"})
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	w = f.do(t, "PUT", "/hotkeys/"+h.ID+"/actions/order", map[string]any{"actionIds": []string{second.ID, first.ID}})
	require.Equal(t, nethttp.StatusOK, w.Code)
	got := decode[domain.Hotkey](t, w)
	assert.Equal(t, second.ID, got.Actions[0].ID)

	w = f.do(t, "PUT", "/hotkeys/"+h.ID+"/actions/order", map[string]any{"actionIds": []string{first.ID}})
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	w = f.do(t, "DELETE", "/hotkeys/"+h.ID+"/actions/"+first.ID, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Len(t, decode[domain.Hotkey](t, w).Actions, 1)
	assert.Equal(t, nethttp.StatusNotFound, f.do(t, "DELETE", "/hotkeys/"+h.ID+"/actions/"+first.ID, nil).Code)
}

func TestExecuteFailureReported(t *testing.T) {
	f := newFixture(t)
	f.studio.SetConnected(false)
	h := f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{Actions: []domain.Action{
		{Type: domain.ActionRecordingToggle, Data: map[string]any{}},
	}})

	resp := decode[map[string]any](t, f.do(t, "POST", "/hotkeys/"+h.ID+"/execute", nil))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], domain.ErrNotConnected.Error())

	assert.Equal(t, nethttp.StatusNotFound, f.do(t, "POST", "/hotkeys/nope/execute", nil).Code)
}

func TestExecuteOutlivesRequest(t *testing.T) {
	f := newFixture(t)
	record := domain.Action{Type: domain.ActionRecordingToggle, Data: map[string]any{}, Delay: 100}
	h := f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{Actions: []domain.Action{record}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest("POST", "/hotkeys/"+h.ID+"/execute", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.True(t, f.studio.Recording())
	history := f.eng.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
}

func TestDecksAndGrid(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "POST", "/decks", domain.DeckOptions{Name: "Show", Rows: 2, Columns: 3})
	require.Equal(t, nethttp.StatusCreated, w.Code)
	main := decode[domain.Deck](t, w)

	w = f.do(t, "POST", "/decks", domain.DeckOptions{Name: "Audio", ParentDeckID: main.ID})
	require.Equal(t, nethttp.StatusCreated, w.Code)
	sub := decode[domain.Deck](t, w)
	assert.Equal(t, 2, sub.Rows)
	assert.Contains(t, w.Body.String(), `"isSubDeck":true`)

	w = f.do(t, "POST", "/decks", domain.DeckOptions{ParentDeckID: sub.ID})
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	h := f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{Name: "Mute"})
	w = f.do(t, "PUT", "/hotkeys/"+h.ID+"/position", map[string]any{"deckId": sub.ID, "position": map[string]int{"row": 1, "col": 2}})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	w = f.do(t, "PUT", "/hotkeys/"+h.ID+"/position", map[string]any{"deckId": sub.ID, "position": map[string]int{"row": 5, "col": 0}})
	assert.Equal(t, nethttp.StatusConflict, w.Code)

	w = f.do(t, "PUT", "/decks/"+main.ID+"/subdeck", map[string]string{"subDeckId": sub.ID})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"`+main.ID+`":"`+sub.ID+`"}`, w.Body.String())

	grid := decode[domain.Grid](t, f.do(t, "GET", "/decks/"+main.ID+"/grid", nil))
	assert.Equal(t, sub.ID, grid.Deck.ID)
	require.NotNil(t, grid.Slots[1][2])
	assert.Equal(t, "Mute", grid.Slots[1][2].Name)

	w = f.do(t, "DELETE", "/decks/"+main.ID+"/subdeck", nil)
	assert.JSONEq(t, `{}`, w.Body.String())

	subs := decode[[]domain.Deck](t, f.do(t, "GET", "/decks?parentId="+main.ID, nil))
	assert.Len(t, subs, 1)
	mains := decode[[]domain.Deck](t, f.do(t, "GET", "/decks?main=true", nil))
	assert.Len(t, mains, 1)

	w = f.do(t, "POST", "/decks/"+main.ID+"/switch", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, main.ID, decode[domain.Deck](t, f.do(t, "GET", "/decks/current", nil)).ID)

	w = f.do(t, "PATCH", "/decks/"+main.ID, map[string]any{"rows": 4})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, 4, decode[domain.Deck](t, f.do(t, "GET", "/decks/"+sub.ID, nil)).Rows)

	w = f.do(t, "DELETE", "/decks/"+main.ID, nil)
	assert.Equal(t, nethttp.StatusNoContent, w.Code)
	assert.Empty(t, decode[[]domain.Deck](t, f.do(t, "GET", "/decks", nil)))
	detached := decode[*domain.Hotkey](t, f.do(t, "GET", "/hotkeys/"+h.ID, nil))
	assert.True(t, detached.IsStandalone())
}

func TestHotkeyFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	deck, err := f.eng.CreateDeck(ctx, domain.DeckOptions{})
	require.NoError(t, err)
	f.eng.CreateHotkey(ctx, domain.HotkeyOptions{Name: "placed", DeckID: deck.ID, Position: &domain.Position{}})
	f.eng.CreateHotkey(ctx, domain.HotkeyOptions{Name: "loose"})

	byDeck := decode[[]domain.Hotkey](t, f.do(t, "GET", "/hotkeys?deckId="+deck.ID, nil))
	require.Len(t, byDeck, 1)
	assert.Equal(t, "placed", byDeck[0].Name)

	standalone := decode[[]domain.Hotkey](t, f.do(t, "GET", "/hotkeys?standalone=true", nil))
	require.Len(t, standalone, 1)
	assert.Equal(t, "loose", standalone[0].Name)

	placed := decode[[]domain.Hotkey](t, f.do(t, "GET", "/hotkeys?standalone=false", nil))
	require.Len(t, placed, 1)

	assert.Equal(t, nethttp.StatusBadRequest, f.do(t, "GET", "/hotkeys?standalone=maybe", nil).Code)
	assert.Len(t, decode[[]domain.Hotkey](t, f.do(t, "GET", "/hotkeys", nil)), 2)
}

func TestLearningBindsKeyboard(t *testing.T) {
	f := newFixture(t)
	h := f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{Name: "Save"})

	assert.Equal(t, nethttp.StatusNotFound, f.do(t, "POST", "/learning/start", map[string]string{"hotkeyId": "nope"}).Code)

	w := f.do(t, "POST", "/learning/start", map[string]string{"hotkeyId": h.ID})
	require.Equal(t, nethttp.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"learning":true}`, f.do(t, "GET", "/learning", nil).Body.String())
	assert.Equal(t, nethttp.StatusConflict, f.do(t, "POST", "/learning/start", nil).Code)

	w = f.do(t, "POST", "/input/keyboard", domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true})
	assert.JSONEq(t, `{"matched":false}`, w.Body.String())

	require.Eventually(t, func() bool {
		got, _ := f.eng.Hotkey(h.ID)
		_, ok := got.Trigger(domain.TriggerKeyboard)
		return ok
	}, time.Second, 5*time.Millisecond)

	w = f.do(t, "POST", "/input/keyboard", domain.KeyEvent{Key: "s", Code: "KeyS", CtrlKey: true})
	assert.JSONEq(t, `{"matched":true}`, w.Body.String())

	require.Equal(t, nethttp.StatusAccepted, f.do(t, "POST", "/learning/start", nil).Code)
	assert.JSONEq(t, `{"learning":false}`, f.do(t, "POST", "/learning/stop", nil).Body.String())
}

func TestConfigRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	deck, err := f.eng.CreateDeck(ctx, domain.DeckOptions{Name: "Show"})
	require.NoError(t, err)
	f.eng.CreateHotkey(ctx, domain.HotkeyOptions{Name: "A", DeckID: deck.ID, Position: &domain.Position{}})

	w := f.do(t, "GET", "/config", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hotdeck-config.json")
	exported := w.Body.String()

	other := newFixture(t)
	w = other.do(t, "POST", "/config", exported)
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	stats := decode[domain.Stats](t, w)
	assert.Equal(t, 1, stats.TotalHotkeys)
	assert.Equal(t, 1, stats.TotalDecks)

	w = other.do(t, "POST", "/config", `{"version":"0.9","hotkeys":[],"decks":[]}`)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrUnsupportedVersion.Error())

	assert.Equal(t, nethttp.StatusBadRequest, other.do(t, "POST", "/config", `{`).Code)
}

func TestStatsHistoryAndMetrics(t *testing.T) {
	f := newFixture(t)
	h := f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{Actions: []domain.Action{
		{Type: domain.ActionStreamingToggle, Data: map[string]any{}},
	}})
	f.do(t, "POST", "/hotkeys/"+h.ID+"/execute", nil)

	stats := decode[domain.Stats](t, f.do(t, "GET", "/stats", nil))
	assert.Equal(t, 1, stats.TotalExecutions)

	history := decode[[]domain.ExecutionRecord](t, f.do(t, "GET", "/history", nil))
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)

	w := f.do(t, "GET", "/metrics", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hotdeck_hotkey_executions_total{result="success"} 1`)
}

func TestSubscribeEvents(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.handler)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := nethttp.NewRequestWithContext(ctx, "GET", srv.URL+"/events?types=hotkeyCreated", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 16)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()
	require.Equal(t, "event: ping", <-lines)

	require.Eventually(t, func() bool { return f.bus.Len() > 1 }, time.Second, 5*time.Millisecond)
	_, err = f.eng.CreateDeck(context.Background(), domain.DeckOptions{Name: "ignored"})
	require.NoError(t, err)
	f.eng.CreateHotkey(context.Background(), domain.HotkeyOptions{Name: "Streamed"})

	var event, data string
	for line := range lines {
		if v, ok := strings.CutPrefix(line, "event: "); ok && v != "ping" {
			event = v
		}
		if v, ok := strings.CutPrefix(line, "data: "); ok && event != "" {
			data = v
			break
		}
	}
	assert.Equal(t, "hotkeyCreated", event)
	assert.Contains(t, data, `"name":"Streamed"`)
}

func TestOpenAPISpec(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "GET", "/openapi.yaml", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/hotkeys/{id}/execute")

	w = f.do(t, "GET", "/swagger", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/openapi.yaml")

	swagger, err := http.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	for _, path := range []string{"/hotkeys", "/hotkeys/{id}/actions/{actionId}", "/decks/{id}/subdeck", "/learning/start", "/events"} {
		assert.NotNil(t, swagger.Paths.Value(path), path)
	}
}

func TestInvalidQueryParameter(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, "GET", "/decks?main=sometimes", nil)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "main")
}

func TestSubscribeEvents_NotConfigured(t *testing.T) {
	eng := runtime.NewEngine(memory.NewStore())
	h := http.NewHandler(http.Options{Engine: eng})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/events", nil))
	assert.Equal(t, nethttp.StatusNotImplemented, w.Code)
	assert.Equal(t, nethttp.StatusNotFound, func() int {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
		return w.Code
	}())
}
