package domain

import "time"

// EventType names a domain event.
type EventType string

const (
	EventHotkeyCreated         EventType = "hotkeyCreated"
	EventHotkeyUpdated         EventType = "hotkeyUpdated"
	EventHotkeyDeleted         EventType = "hotkeyDeleted"
	EventDeckCreated           EventType = "deckCreated"
	EventDeckUpdated           EventType = "deckUpdated"
	EventDeckDeleted           EventType = "deckDeleted"
	EventDeckSwitched          EventType = "deckSwitched"
	EventSubDeckSwitched       EventType = "subDeckSwitched"
	EventHotkeyExecuted        EventType = "hotkeyExecuted"
	EventActionExecuted        EventType = "actionExecuted"
	EventLearningStarted       EventType = "learningStarted"
	EventLearningStopped       EventType = "learningStopped"
	EventHapticFeedback        EventType = "hapticFeedback"
	EventConfigurationImported EventType = "configurationImported"
	EventInitialized           EventType = "initialized"
)

// Event is the closed set of notifications published by the engine.
type Event interface {
	EventType() EventType
}

// HotkeyEvent reports a created, updated or deleted hotkey.
type HotkeyEvent struct {
	Type   EventType `json:"type"`
	Hotkey *Hotkey   `json:"hotkey"`
}

// DeckEvent reports a created, updated or deleted deck.
type DeckEvent struct {
	Type EventType `json:"type"`
	Deck *Deck     `json:"deck"`
}

// DeckSwitched reports that the current deck changed, or was already active.
type DeckSwitched struct {
	Deck          *Deck `json:"deck"`
	AlreadyActive bool  `json:"alreadyActive,omitempty"`
}

// SubDeckSwitched reports a change of the active sub-deck of a main deck.
// An empty SubDeckID means the main deck shows its own grid again.
// Refresh is set when the whole active-sub-deck map was replaced (e.g. by an import).
type SubDeckSwitched struct {
	MainDeckID string `json:"mainDeckId"`
	SubDeckID  string `json:"subDeckId"`
	Refresh    bool   `json:"refresh,omitempty"`
}

// HotkeyExecuted reports the outcome of an execution pipeline run.
type HotkeyExecuted struct {
	Hotkey  *Hotkey `json:"hotkey"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// ActionExecuted reports one dispatched action within a run.
type ActionExecuted struct {
	HotkeyID string        `json:"hotkeyId"`
	Action   Action        `json:"action"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// LearningStarted reports that learning mode is listening.
type LearningStarted struct {
	TargetHotkeyID string `json:"targetHotkeyId,omitempty"`
}

// LearningStopped reports that learning mode returned to idle.
// Trigger is nil when the cycle was cancelled.
type LearningStopped struct {
	TargetHotkeyID string   `json:"targetHotkeyId,omitempty"`
	Trigger        *Trigger `json:"trigger,omitempty"`
}

// HapticFeedback asks the presentation layer for a visual/haptic pulse.
type HapticFeedback struct {
	HotkeyID string `json:"hotkeyId"`
}

// ConfigurationImported reports a wholesale replacement of the model.
type ConfigurationImported struct {
	Hotkeys int `json:"hotkeys"`
	Decks   int `json:"decks"`
}

// Initialized reports that the engine restored its state from storage.
type Initialized struct {
	Hotkeys int `json:"hotkeys"`
	Decks   int `json:"decks"`
}

func (e HotkeyEvent) EventType() EventType         { return e.Type }
func (e DeckEvent) EventType() EventType           { return e.Type }
func (DeckSwitched) EventType() EventType          { return EventDeckSwitched }
func (SubDeckSwitched) EventType() EventType       { return EventSubDeckSwitched }
func (HotkeyExecuted) EventType() EventType        { return EventHotkeyExecuted }
func (ActionExecuted) EventType() EventType        { return EventActionExecuted }
func (LearningStarted) EventType() EventType       { return EventLearningStarted }
func (LearningStopped) EventType() EventType       { return EventLearningStopped }
func (HapticFeedback) EventType() EventType        { return EventHapticFeedback }
func (ConfigurationImported) EventType() EventType { return EventConfigurationImported }
func (Initialized) EventType() EventType           { return EventInitialized }
