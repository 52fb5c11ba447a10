// Package simulator provides an in-process stand-in for the broadcasting tool
// and the audio mixer. It keeps the state those collaborators would hold
// (program scene, source visibility, filters, outputs, volumes) so hotkeys can
// be exercised end to end without a running broadcaster.
package simulator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

var (
	_ ports.Broadcaster = (*Studio)(nil)
	_ ports.Mixer       = (*Studio)(nil)
)

// Request is a raw request received by Call.
type Request struct {
	Type string
	Data map[string]any
}

// Studio is a simulated broadcaster and mixer.
//
// Without declared scenes it accepts any scene and source name. Once a scene
// is declared with WithScene, unknown scenes and sources are rejected the way
// a real broadcaster would.
type Studio struct {
	mu        sync.Mutex
	connected bool
	strict    bool
	scene     string
	scenes    map[string]map[string]bool
	filters   map[string]bool
	volumes   map[string]float64
	mutes     map[string]bool
	recording bool
	streaming bool
	requests  []Request
	logger    *slog.Logger
}

// Option configures a Studio.
type Option func(*Studio)

// WithScene declares a scene and its sources, all initially visible.
func WithScene(name string, sources ...string) Option {
	return func(s *Studio) {
		s.strict = true
		items := make(map[string]bool, len(sources))
		for _, src := range sources {
			items[src] = true
		}
		s.scenes[name] = items
		if s.scene == "" {
			s.scene = name
		}
	}
}

// WithDisconnected starts the studio offline.
func WithDisconnected() Option {
	return func(s *Studio) {
		s.connected = false
	}
}

// WithLogger reports every simulated operation at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Studio) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a connected studio.
func New(opts ...Option) *Studio {
	s := &Studio{
		connected: true,
		scenes:    map[string]map[string]bool{},
		filters:   map[string]bool{},
		volumes:   map[string]float64{},
		mutes:     map[string]bool{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetConnected simulates the connection going up or down.
func (s *Studio) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
}

// IsConnected implements ports.Broadcaster.
func (s *Studio) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Studio) checkLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.connected {
		return domain.ErrNotConnected
	}
	return nil
}

func (s *Studio) sceneLocked(name string) (map[string]bool, error) {
	items, ok := s.scenes[name]
	if ok {
		return items, nil
	}
	if s.strict {
		return nil, fmt.Errorf("scene %q does not exist", name)
	}
	items = map[string]bool{}
	s.scenes[name] = items
	return items, nil
}

// SetCurrentProgramScene implements ports.Broadcaster.
func (s *Studio) SetCurrentProgramScene(ctx context.Context, scene string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return err
	}
	if _, err := s.sceneLocked(scene); err != nil {
		return err
	}
	s.scene = scene
	s.logger.Debug("program scene changed", "scene", scene)
	return nil
}

// GetSceneItemEnabled implements ports.Broadcaster.
func (s *Studio) GetSceneItemEnabled(ctx context.Context, scene, source string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return false, err
	}
	items, err := s.sceneLocked(scene)
	if err != nil {
		return false, err
	}
	visible, ok := items[source]
	if !ok && s.strict {
		return false, fmt.Errorf("source %q not found in scene %q", source, scene)
	}
	return visible, nil
}

// SetSceneItemEnabled implements ports.Broadcaster.
func (s *Studio) SetSceneItemEnabled(ctx context.Context, scene, source string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return err
	}
	items, err := s.sceneLocked(scene)
	if err != nil {
		return err
	}
	if _, ok := items[source]; !ok && s.strict {
		return fmt.Errorf("source %q not found in scene %q", source, scene)
	}
	items[source] = enabled
	s.logger.Debug("source visibility changed", "scene", scene, "source", source, "visible", enabled)
	return nil
}

// SetSourceFilterEnabled implements ports.Broadcaster.
func (s *Studio) SetSourceFilterEnabled(ctx context.Context, source, filter string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return err
	}
	s.filters[source+"/"+filter] = enabled
	s.logger.Debug("filter changed", "source", source, "filter", filter, "enabled", enabled)
	return nil
}

// GetRecordStatus implements ports.Broadcaster.
func (s *Studio) GetRecordStatus(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return false, err
	}
	return s.recording, nil
}

// StartRecord implements ports.Broadcaster.
func (s *Studio) StartRecord(ctx context.Context) error {
	return s.setOutput(ctx, &s.recording, true, "recording")
}

// StopRecord implements ports.Broadcaster.
func (s *Studio) StopRecord(ctx context.Context) error {
	return s.setOutput(ctx, &s.recording, false, "recording")
}

// GetStreamStatus implements ports.Broadcaster.
func (s *Studio) GetStreamStatus(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return false, err
	}
	return s.streaming, nil
}

// StartStream implements ports.Broadcaster.
func (s *Studio) StartStream(ctx context.Context) error {
	return s.setOutput(ctx, &s.streaming, true, "streaming")
}

// StopStream implements ports.Broadcaster.
func (s *Studio) StopStream(ctx context.Context) error {
	return s.setOutput(ctx, &s.streaming, false, "streaming")
}

func (s *Studio) setOutput(ctx context.Context, flag *bool, active bool, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return err
	}
	if *flag == active {
		return fmt.Errorf("%s is already %s", name, map[bool]string{true: "active", false: "stopped"}[active])
	}
	*flag = active
	s.logger.Debug("output changed", "output", name, "active", active)
	return nil
}

// Call implements ports.Broadcaster. A few read-only requests are answered
// from the simulated state; anything else is recorded and acknowledged.
func (s *Studio) Call(ctx context.Context, requestType string, requestData map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx); err != nil {
		return nil, err
	}
	s.requests = append(s.requests, Request{Type: requestType, Data: maps.Clone(requestData)})
	s.logger.Debug("raw request", "request_type", requestType)

	switch requestType {
	case "GetCurrentProgramScene":
		return map[string]any{"currentProgramSceneName": s.scene}, nil
	case "GetSceneList":
		names := slices.Sorted(maps.Keys(s.scenes))
		return map[string]any{"scenes": names}, nil
	case "GetRecordStatus":
		return map[string]any{"outputActive": s.recording}, nil
	case "GetStreamStatus":
		return map[string]any{"outputActive": s.streaming}, nil
	}
	return map[string]any{}, nil
}

// SetSourceVolume implements ports.Mixer.
func (s *Studio) SetSourceVolume(ctx context.Context, source string, volume float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volumes[source] = volume
	s.logger.Debug("volume changed", "source", source, "volume", volume)
	return nil
}

// SetSourceMute implements ports.Mixer.
func (s *Studio) SetSourceMute(ctx context.Context, source string, muted bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutes[source] = muted
	s.logger.Debug("mute changed", "source", source, "muted", muted)
	return nil
}

// ProgramScene returns the current program scene.
func (s *Studio) ProgramScene() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Visible reports whether source is shown in scene.
func (s *Studio) Visible(scene, source string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scenes[scene][source]
}

// FilterEnabled reports the state of a source filter.
func (s *Studio) FilterEnabled(source, filter string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters[source+"/"+filter]
}

// Recording reports whether the recording output is active.
func (s *Studio) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording
}

// Streaming reports whether the streaming output is active.
func (s *Studio) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

// Volume returns the last volume set on source and whether one was set.
func (s *Studio) Volume(source string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.volumes[source]
	return v, ok
}

// Muted reports whether source is muted.
func (s *Studio) Muted(source string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutes[source]
}

// Requests returns the raw requests received so far.
func (s *Studio) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}
