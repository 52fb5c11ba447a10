package ports

import "context"

// Settings keys under which the engine persists its snapshots.
const (
	KeyHotkeys        = "hotkeys.list"
	KeyDecks          = "hotkeys.decks"
	KeyActiveSubDecks = "hotkeys.activeSubDecks"
)

// SettingsStore defines the key/value persistence used by the engine.
// Values are opaque serialized snapshots; every write replaces the whole value.
type SettingsStore interface {
	// Get returns the value stored under key.
	// Returns domain.ErrKeyNotFound if the key was never written or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
