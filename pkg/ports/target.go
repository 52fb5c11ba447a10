package ports

import "context"

// Broadcaster is the broadcasting tool driven by scene, source, filter,
// recording, streaming and raw actions.
type Broadcaster interface {
	// IsConnected reports whether calls can currently reach the tool.
	IsConnected() bool

	SetCurrentProgramScene(ctx context.Context, scene string) error
	GetSceneItemEnabled(ctx context.Context, scene, source string) (bool, error)
	SetSceneItemEnabled(ctx context.Context, scene, source string, enabled bool) error
	SetSourceFilterEnabled(ctx context.Context, source, filter string, enabled bool) error

	GetRecordStatus(ctx context.Context) (active bool, err error)
	StartRecord(ctx context.Context) error
	StopRecord(ctx context.Context) error

	GetStreamStatus(ctx context.Context) (active bool, err error)
	StartStream(ctx context.Context) error
	StopStream(ctx context.Context) error

	// Call passes an arbitrary request through to the tool.
	Call(ctx context.Context, requestType string, requestData map[string]any) (map[string]any, error)
}

// Mixer is the audio mixer driven by volume and mute actions.
type Mixer interface {
	SetSourceVolume(ctx context.Context, source string, volume float64) error
	SetSourceMute(ctx context.Context, source string, muted bool) error
}
