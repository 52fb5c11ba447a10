package domain

import "errors"

// ErrKeyNotFound is returned by settings stores when a key has never been written.
var ErrKeyNotFound = errors.New("settings key not found")

// ErrNotConnected is returned when a broadcaster action runs without a live connection.
var ErrNotConnected = errors.New("broadcaster not connected")

// ErrMixerUnavailable is returned when an audio action runs without a configured mixer.
var ErrMixerUnavailable = errors.New("audio mixer not available")

// ErrUnknownActionType is returned when an action type is outside the closed action set.
var ErrUnknownActionType = errors.New("unknown action type")

// ErrInvalidActionData is returned when an action's data does not decode into its payload.
var ErrInvalidActionData = errors.New("invalid action data")

// ErrInvalidTrigger is returned when a trigger has an unknown kind or no data.
var ErrInvalidTrigger = errors.New("invalid trigger")

// ErrUnsupportedVersion is returned when importing a configuration older than the supported major version.
var ErrUnsupportedVersion = errors.New("unsupported configuration version")

// ErrInvalidConfiguration is returned when an imported configuration breaks a model invariant.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrLearningInProgress is returned when learning is started while another cycle is listening.
var ErrLearningInProgress = errors.New("learning already in progress")

// ErrHotkeyNotFound is returned when a hotkey id cannot be resolved.
var ErrHotkeyNotFound = errors.New("hotkey not found")

// ErrDeckNotFound is returned when a deck id cannot be resolved.
var ErrDeckNotFound = errors.New("deck not found")

// ErrNestedSubDeck is returned when a sub-deck is created under another sub-deck.
var ErrNestedSubDeck = errors.New("sub-decks cannot own sub-decks")

// ErrInvalidDeckSize is returned when rows or columns are not positive.
var ErrInvalidDeckSize = errors.New("deck rows and columns must be positive")
