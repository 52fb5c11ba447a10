package ports

import (
	"context"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// HotkeyService is the engine surface consumed by driving adapters.
// Boolean results follow the engine's CRUD contract: false means the id was
// unknown or the input was rejected, and nothing changed.
type HotkeyService interface {
	CreateHotkey(ctx context.Context, opts domain.HotkeyOptions) *domain.Hotkey
	UpdateHotkey(ctx context.Context, id string, patch domain.HotkeyPatch) bool
	DeleteHotkey(ctx context.Context, id string) bool
	DuplicateHotkey(ctx context.Context, id string) (*domain.Hotkey, bool)
	AddTrigger(ctx context.Context, id string, t domain.Trigger) bool
	RemoveTrigger(ctx context.Context, id string, kind domain.TriggerKind) bool
	AddAction(ctx context.Context, id string, a domain.Action) (domain.Action, bool)
	RemoveAction(ctx context.Context, id, actionID string) bool
	ReorderActions(ctx context.Context, id string, actionIDs []string) bool
	MoveHotkey(ctx context.Context, id, deckID string, pos domain.Position) bool
	DetachHotkey(ctx context.Context, id string) bool
	Hotkey(id string) (*domain.Hotkey, bool)
	Hotkeys() []*domain.Hotkey
	HotkeysByDeck(deckID string) []*domain.Hotkey
	StandaloneHotkeys() []*domain.Hotkey

	CreateDeck(ctx context.Context, opts domain.DeckOptions) (*domain.Deck, error)
	UpdateDeck(ctx context.Context, id string, patch domain.DeckPatch) bool
	DeleteDeck(ctx context.Context, id string) bool
	Deck(id string) (*domain.Deck, bool)
	Decks() []*domain.Deck
	MainDecks() []*domain.Deck
	SubDecks(parentID string) []*domain.Deck
	SwitchToSubDeck(ctx context.Context, mainID, subID string) bool
	SwitchBackToMainDeck(ctx context.Context, mainID string) bool
	SwitchToDeck(ctx context.Context, id string) bool
	CurrentDeck() (*domain.Deck, bool)
	ActiveSubDecks() map[string]string
	Grid(mainID string) (domain.Grid, bool)

	Execute(ctx context.Context, id string) bool
	HandleMIDI(ctx context.Context, m domain.MIDIMessage) int
	HandleKey(ctx context.Context, ev domain.KeyEvent) bool

	StartLearning(target string, cb domain.LearnFunc) error
	LearnTrigger(ctx context.Context, hotkeyID string) error
	StopLearning()
	IsLearning() bool

	Export() *domain.Configuration
	Import(ctx context.Context, cfg *domain.Configuration) error
	Stats() domain.Stats
	History() []domain.ExecutionRecord
}
