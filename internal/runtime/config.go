package runtime

import (
	"context"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// Export returns a deep copy of the model as a configuration document.
func (e *Engine) Export() *domain.Configuration {
	exportedAt := e.now()

	e.mu.Lock()
	defer e.mu.Unlock()
	cfg := &domain.Configuration{
		Hotkeys:        make([]*domain.Hotkey, 0, len(e.hotkeys)),
		Decks:          make([]*domain.Deck, 0, len(e.decks)),
		ActiveSubDecks: make(map[string]string, len(e.activeSubDecks)),
		Version:        domain.ConfigurationVersion,
		ExportedAt:     exportedAt,
	}
	for _, h := range e.hotkeys {
		cfg.Hotkeys = append(cfg.Hotkeys, h.Clone())
	}
	for _, d := range e.decks {
		cfg.Decks = append(cfg.Decks, d.Clone())
	}
	for k, v := range e.activeSubDecks {
		cfg.ActiveSubDecks[k] = v
	}
	return cfg
}

// Import replaces hotkeys, decks and the active-sub-deck map with cfg.
// cfg is fully validated first; on error the model is untouched.
// A persist failure is returned after the in-memory replacement.
func (e *Engine) Import(ctx context.Context, cfg *domain.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	hotkeys := make([]*domain.Hotkey, 0, len(cfg.Hotkeys))
	for _, h := range cfg.Hotkeys {
		c := h.Clone()
		if c.Triggers == nil {
			c.Triggers = []domain.Trigger{}
		}
		if c.Actions == nil {
			c.Actions = []domain.Action{}
		}
		hotkeys = append(hotkeys, c)
	}
	decks := make([]*domain.Deck, 0, len(cfg.Decks))
	for _, d := range cfg.Decks {
		decks = append(decks, d.Clone())
	}
	active := make(map[string]string, len(cfg.ActiveSubDecks))
	for k, v := range cfg.ActiveSubDecks {
		active[k] = v
	}

	e.mu.Lock()
	e.hotkeys, e.decks, e.activeSubDecks = hotkeys, decks, active
	if e.deckLocked(e.currentDeckID) == nil {
		e.currentDeckID = ""
	}
	err := e.persistLocked(ctx)
	e.mu.Unlock()

	e.logger.Info("configuration imported", "hotkeys", len(hotkeys), "decks", len(decks), "version", cfg.Version)
	e.publish(
		domain.ConfigurationImported{Hotkeys: len(hotkeys), Decks: len(decks)},
		domain.SubDeckSwitched{Refresh: true},
	)
	return err
}

// NoCurrentDeck is reported by Stats before any deck switch.
const NoCurrentDeck = "None"

// Stats summarizes the model. TotalExecutions sums the persisted trigger
// counts, so it survives restarts while History does not.
func (e *Engine) Stats() domain.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := domain.Stats{
		TotalHotkeys: len(e.hotkeys),
		TotalDecks:   len(e.decks),
		CurrentDeck:  NoCurrentDeck,
	}
	actions := 0
	for _, h := range e.hotkeys {
		if h.Enabled {
			s.EnabledHotkeys++
		}
		actions += len(h.Actions)
		s.TotalExecutions += h.TriggerCount
	}
	if len(e.hotkeys) > 0 {
		s.AverageActionsPerHotkey = float64(actions) / float64(len(e.hotkeys))
	}
	if d := e.deckLocked(e.currentDeckID); d != nil {
		s.CurrentDeck = d.Name
	}
	return s
}
