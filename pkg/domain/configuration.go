package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ConfigurationVersion is written by exports.
const ConfigurationVersion = "1.0"

// MinConfigurationMajor is the oldest major version accepted by imports.
const MinConfigurationMajor = 1

// Configuration is the import/export document.
type Configuration struct {
	Hotkeys        []*Hotkey         `json:"hotkeys" yaml:"hotkeys"`
	Decks          []*Deck           `json:"decks" yaml:"decks"`
	ActiveSubDecks map[string]string `json:"activeSubDecks" yaml:"activeSubDecks"`
	Version        string            `json:"version" yaml:"version"`
	ExportedAt     time.Time         `json:"exportedAt" yaml:"exportedAt"`
}

// CheckVersion rejects a missing version or a major version below MinConfigurationMajor.
func (c *Configuration) CheckVersion() error {
	v := strings.TrimPrefix(strings.TrimSpace(c.Version), "v")
	if v == "" {
		return fmt.Errorf("%w: version is missing", ErrUnsupportedVersion)
	}
	majorPart, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, c.Version)
	}
	if major < MinConfigurationMajor {
		return fmt.Errorf("%w: %q is older than %d.x", ErrUnsupportedVersion, c.Version, MinConfigurationMajor)
	}
	return nil
}

// Validate checks the version and every model invariant.
// It never mutates c, so an import can be rejected without touching live state.
func (c *Configuration) Validate() error {
	if err := c.CheckVersion(); err != nil {
		return err
	}

	decks := make(map[string]*Deck, len(c.Decks))
	for i, d := range c.Decks {
		if d == nil || d.ID == "" {
			return fmt.Errorf("%w: deck #%d has no id", ErrInvalidConfiguration, i)
		}
		if _, dup := decks[d.ID]; dup {
			return fmt.Errorf("%w: duplicate deck id %q", ErrInvalidConfiguration, d.ID)
		}
		if d.Rows <= 0 || d.Columns <= 0 {
			return fmt.Errorf("%w: deck %q: %w", ErrInvalidConfiguration, d.ID, ErrInvalidDeckSize)
		}
		decks[d.ID] = d
	}
	for _, d := range c.Decks {
		if !d.IsSubDeck() {
			continue
		}
		parent, ok := decks[d.ParentDeckID]
		if !ok {
			return fmt.Errorf("%w: deck %q references unknown parent %q", ErrInvalidConfiguration, d.ID, d.ParentDeckID)
		}
		if parent.IsSubDeck() {
			return fmt.Errorf("%w: deck %q: %w", ErrInvalidConfiguration, d.ID, ErrNestedSubDeck)
		}
		if d.Rows != parent.Rows || d.Columns != parent.Columns {
			return fmt.Errorf("%w: sub-deck %q is %dx%d, parent is %dx%d",
				ErrInvalidConfiguration, d.ID, d.Rows, d.Columns, parent.Rows, parent.Columns)
		}
	}

	seen := make(map[string]struct{}, len(c.Hotkeys))
	for i, h := range c.Hotkeys {
		if h == nil || h.ID == "" {
			return fmt.Errorf("%w: hotkey #%d has no id", ErrInvalidConfiguration, i)
		}
		if _, dup := seen[h.ID]; dup {
			return fmt.Errorf("%w: duplicate hotkey id %q", ErrInvalidConfiguration, h.ID)
		}
		seen[h.ID] = struct{}{}
		if err := validateHotkey(h, decks); err != nil {
			return fmt.Errorf("%w: hotkey %q: %w", ErrInvalidConfiguration, h.ID, err)
		}
	}

	for mainID, subID := range c.ActiveSubDecks {
		sub, ok := decks[subID]
		if !ok || sub.ParentDeckID != mainID {
			return fmt.Errorf("%w: active sub-deck %q is not a child of %q", ErrInvalidConfiguration, subID, mainID)
		}
	}
	return nil
}

func validateHotkey(h *Hotkey, decks map[string]*Deck) error {
	if (h.DeckID == "") != (h.Position == nil) {
		return fmt.Errorf("position must be set together with deckId")
	}
	if h.DeckID != "" {
		if _, ok := decks[h.DeckID]; !ok {
			return fmt.Errorf("%w: %q", ErrDeckNotFound, h.DeckID)
		}
	}
	if h.TriggerCount < 0 {
		return fmt.Errorf("negative triggerCount")
	}

	kinds := make(map[TriggerKind]struct{}, len(h.Triggers))
	for _, t := range h.Triggers {
		if !t.Valid() {
			return fmt.Errorf("%w: kind %q", ErrInvalidTrigger, t.Kind)
		}
		if _, dup := kinds[t.Kind]; dup {
			return fmt.Errorf("%w: duplicate %s trigger", ErrInvalidTrigger, t.Kind)
		}
		kinds[t.Kind] = struct{}{}
	}
	for _, a := range h.Actions {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}
