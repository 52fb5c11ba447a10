package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ActionType is the closed set of action types.
type ActionType string

const (
	ActionSceneSwitch      ActionType = "scene_switch"
	ActionSourceVisibility ActionType = "source_visibility"
	ActionFilterToggle     ActionType = "filter_toggle"
	ActionRecordingToggle  ActionType = "recording_toggle"
	ActionStreamingToggle  ActionType = "streaming_toggle"
	ActionRawRequest       ActionType = "raw_request"
	ActionDeckSwitch       ActionType = "deck_switch"
	ActionSubDeckSwitch    ActionType = "sub_deck_switch"
	ActionDelay            ActionType = "delay"
	ActionAudioVolume      ActionType = "audio_volume"
	ActionAudioMute        ActionType = "audio_mute"
)

var actionTypes = []ActionType{
	ActionSceneSwitch,
	ActionSourceVisibility,
	ActionFilterToggle,
	ActionRecordingToggle,
	ActionStreamingToggle,
	ActionRawRequest,
	ActionDeckSwitch,
	ActionSubDeckSwitch,
	ActionDelay,
	ActionAudioVolume,
	ActionAudioMute,
}

// legacyActionPrefix is carried by broadcaster action types in older exports.
const legacyActionPrefix = "obs_"

// ActionTypes lists every valid action type.
func ActionTypes() []ActionType {
	out := make([]ActionType, len(actionTypes))
	copy(out, actionTypes)
	return out
}

// Valid reports whether t belongs to the closed action set.
func (t ActionType) Valid() bool {
	for _, known := range actionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NormalizeActionType maps legacy "obs_"-prefixed names onto the current set.
func NormalizeActionType(s string) ActionType {
	t := ActionType(s)
	if t.Valid() {
		return t
	}
	if trimmed := ActionType(strings.TrimPrefix(s, legacyActionPrefix)); trimmed.Valid() {
		return trimmed
	}
	return t
}

// Action is one step of a Hotkey's sequence.
// Delay is in milliseconds and is waited before the action runs.
type Action struct {
	ID    string         `json:"id"`
	Order int            `json:"order"`
	Type  ActionType     `json:"type"`
	Data  map[string]any `json:"data"`
	Delay int64          `json:"delay"`
}

// DelayDuration returns Delay as a time.Duration.
func (a Action) DelayDuration() time.Duration {
	return time.Duration(a.Delay) * time.Millisecond
}

// Clone returns a deep copy of the action.
func (a Action) Clone() Action {
	a.Data = cloneMap(a.Data)
	return a
}

// UnmarshalJSON normalizes legacy action type names.
func (a *Action) UnmarshalJSON(b []byte) error {
	type alias Action
	var raw alias
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*a = Action(raw)
	a.Type = NormalizeActionType(string(raw.Type))
	return nil
}

// Validate checks the type, the presence of data, the delay and the typed payload.
func (a Action) Validate() error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownActionType, a.Type)
	}
	if a.Data == nil {
		return fmt.Errorf("%w: %s has no data", ErrInvalidActionData, a.Type)
	}
	if a.Delay < 0 {
		return fmt.Errorf("%w: negative delay %d", ErrInvalidActionData, a.Delay)
	}
	_, err := a.Payload()
	return err
}

// Payload decodes Data into the typed payload for Type.
func (a Action) Payload() (ActionPayload, error) {
	var p ActionPayload
	switch a.Type {
	case ActionSceneSwitch:
		p = &SceneSwitch{}
	case ActionSourceVisibility:
		p = &SourceVisibility{}
	case ActionFilterToggle:
		p = &FilterToggle{}
	case ActionRecordingToggle:
		p = &RecordingToggle{}
	case ActionStreamingToggle:
		p = &StreamingToggle{}
	case ActionRawRequest:
		p = &RawRequest{}
	case ActionDeckSwitch:
		p = &DeckSwitch{}
	case ActionSubDeckSwitch:
		p = &SubDeckSwitch{}
	case ActionDelay:
		p = &Delay{}
	case ActionAudioVolume:
		p = &AudioVolume{}
	case ActionAudioMute:
		p = &AudioMute{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActionType, a.Type)
	}

	if err := decodePayload(a.Data, p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidActionData, a.Type, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidActionData, a.Type, err)
	}
	return p, nil
}

// requiredKeys lists data keys whose zero value is meaningful, so absence
// cannot be detected from the decoded payload.
var requiredKeys = map[ActionType][]string{
	ActionFilterToggle: {"enabled"},
	ActionAudioVolume:  {"volume"},
	ActionAudioMute:    {"muted"},
}

func decodePayload(data map[string]any, out ActionPayload) error {
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       visibilityHook,
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(data); err != nil {
		return err
	}
	for _, key := range requiredKeys[out.ActionType()] {
		if slices.Contains(md.Unset, key) {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}

// ActionPayload is the typed form of an action's data. The set of implementations is closed.
type ActionPayload interface {
	ActionType() ActionType
	validate() error
}

// SceneSwitch switches the program scene.
type SceneSwitch struct {
	SceneName string `mapstructure:"sceneName"`
}

// Visibility is the target state of a source_visibility action.
type Visibility string

const (
	VisibilityShow   Visibility = "show"
	VisibilityHide   Visibility = "hide"
	VisibilityToggle Visibility = "toggle"
)

var visibilityType = reflect.TypeOf(Visibility(""))

// visibilityHook accepts true, false or "toggle" for Visibility fields.
func visibilityHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != visibilityType {
		return data, nil
	}
	switch v := data.(type) {
	case bool:
		if v {
			return VisibilityShow, nil
		}
		return VisibilityHide, nil
	case string:
		switch strings.ToLower(v) {
		case "toggle":
			return VisibilityToggle, nil
		case "true", "show":
			return VisibilityShow, nil
		case "false", "hide":
			return VisibilityHide, nil
		}
		return nil, fmt.Errorf("visible must be true, false or \"toggle\", got %q", v)
	}
	return data, nil
}

// SourceVisibility shows, hides or toggles a source within a scene.
type SourceVisibility struct {
	SceneName  string     `mapstructure:"sceneName"`
	SourceName string     `mapstructure:"sourceName"`
	Visible    Visibility `mapstructure:"visible"`
}

// FilterToggle enables or disables a source filter.
type FilterToggle struct {
	SourceName string `mapstructure:"sourceName"`
	FilterName string `mapstructure:"filterName"`
	Enabled    bool   `mapstructure:"enabled"`
}

// RecordingToggle inverts the recording state.
type RecordingToggle struct{}

// StreamingToggle inverts the streaming state.
type StreamingToggle struct{}

// RawRequest passes a request straight to the broadcaster.
type RawRequest struct {
	RequestType string         `mapstructure:"requestType"`
	RequestData map[string]any `mapstructure:"requestData"`
}

// DeckSwitch activates a deck (see the engine for sub-deck resolution).
type DeckSwitch struct {
	DeckID string `mapstructure:"deckId"`
}

// SubDeckSwitch activates a sub-deck, or reverts to the main deck when SubDeckID is empty.
type SubDeckSwitch struct {
	MainDeckID string `mapstructure:"mainDeckId"`
	SubDeckID  string `mapstructure:"subDeckId"`
}

// Delay suspends the sequence for Duration milliseconds.
type Delay struct {
	Duration int64 `mapstructure:"duration"`
}

// AudioVolume sets an absolute source volume in [0, 1].
type AudioVolume struct {
	SourceName string  `mapstructure:"sourceName"`
	Volume     float64 `mapstructure:"volume"`
}

// AudioMute sets a source's mute state.
type AudioMute struct {
	SourceName string `mapstructure:"sourceName"`
	Muted      bool   `mapstructure:"muted"`
}

func (*SceneSwitch) ActionType() ActionType      { return ActionSceneSwitch }
func (*SourceVisibility) ActionType() ActionType { return ActionSourceVisibility }
func (*FilterToggle) ActionType() ActionType     { return ActionFilterToggle }
func (*RecordingToggle) ActionType() ActionType  { return ActionRecordingToggle }
func (*StreamingToggle) ActionType() ActionType  { return ActionStreamingToggle }
func (*RawRequest) ActionType() ActionType       { return ActionRawRequest }
func (*DeckSwitch) ActionType() ActionType       { return ActionDeckSwitch }
func (*SubDeckSwitch) ActionType() ActionType    { return ActionSubDeckSwitch }
func (*Delay) ActionType() ActionType            { return ActionDelay }
func (*AudioVolume) ActionType() ActionType      { return ActionAudioVolume }
func (*AudioMute) ActionType() ActionType        { return ActionAudioMute }

func (p *SceneSwitch) validate() error {
	return required("sceneName", p.SceneName)
}

func (p *SourceVisibility) validate() error {
	if err := required("sceneName", p.SceneName); err != nil {
		return err
	}
	if err := required("sourceName", p.SourceName); err != nil {
		return err
	}
	switch p.Visible {
	case VisibilityShow, VisibilityHide, VisibilityToggle:
		return nil
	}
	return fmt.Errorf("visible is required")
}

func (p *FilterToggle) validate() error {
	if err := required("sourceName", p.SourceName); err != nil {
		return err
	}
	return required("filterName", p.FilterName)
}

func (*RecordingToggle) validate() error { return nil }
func (*StreamingToggle) validate() error { return nil }

func (p *RawRequest) validate() error {
	return required("requestType", p.RequestType)
}

func (p *DeckSwitch) validate() error {
	return required("deckId", p.DeckID)
}

func (p *SubDeckSwitch) validate() error {
	return required("mainDeckId", p.MainDeckID)
}

func (p *Delay) validate() error {
	if p.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

func (p *AudioVolume) validate() error {
	if err := required("sourceName", p.SourceName); err != nil {
		return err
	}
	if p.Volume < 0 || p.Volume > 1 {
		return fmt.Errorf("volume must be within [0, 1], got %v", p.Volume)
	}
	return nil
}

func (p *AudioMute) validate() error {
	return required("sourceName", p.SourceName)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
