package runtime

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// CreateDeck adds a deck. When ParentDeckID resolves, the deck becomes a
// sub-deck and inherits the parent's size; an unknown parent yields a main deck.
// Creating a sub-deck under a sub-deck fails with ErrNestedSubDeck.
func (e *Engine) CreateDeck(ctx context.Context, opts domain.DeckOptions) (*domain.Deck, error) {
	now := e.now()

	e.mu.Lock()
	d := &domain.Deck{
		ID:          domain.NewID(domain.PrefixDeck),
		Name:        opts.Name,
		Description: opts.Description,
		Rows:        opts.Rows,
		Columns:     opts.Columns,
		Enabled:     true,
		CreatedAt:   now,
	}
	if d.Name == "" {
		d.Name = fmt.Sprintf("Deck %d", len(e.decks)+1)
	}
	if opts.Enabled != nil {
		d.Enabled = *opts.Enabled
	}
	if d.Rows == 0 {
		d.Rows = domain.DefaultDeckRows
	}
	if d.Columns == 0 {
		d.Columns = domain.DefaultDeckColumns
	}

	if opts.ParentDeckID != "" {
		parent := e.deckLocked(opts.ParentDeckID)
		switch {
		case parent == nil:
			e.logger.Warn("unknown parent deck, creating main deck", "parent_deck_id", opts.ParentDeckID)
		case parent.IsSubDeck():
			e.mu.Unlock()
			return nil, fmt.Errorf("%w: %q is a sub-deck", domain.ErrNestedSubDeck, parent.ID)
		default:
			d.ParentDeckID = parent.ID
			d.Rows, d.Columns = parent.Rows, parent.Columns
		}
	}
	if d.Rows < 0 || d.Columns < 0 {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDeckSize, d.Rows, d.Columns)
	}

	e.decks = append(e.decks, d)
	_ = e.persistLocked(ctx)
	created, out := d.Clone(), d.Clone()
	e.mu.Unlock()

	e.logger.Debug("deck created", "deck_id", d.ID, "parent_deck_id", d.ParentDeckID)
	e.publish(domain.DeckEvent{Type: domain.EventDeckCreated, Deck: created})
	return out, nil
}

// UpdateDeck merges patch into the deck. Resizing a main deck resizes all of
// its sub-decks. It returns false for an unknown id or a non-positive size.
func (e *Engine) UpdateDeck(ctx context.Context, id string, patch domain.DeckPatch) bool {
	e.mu.Lock()
	d := e.deckLocked(id)
	if d == nil {
		e.mu.Unlock()
		return false
	}

	var children []domain.Event
	if !d.IsSubDeck() && (patch.Rows != nil || patch.Columns != nil) {
		rows, cols := d.Rows, d.Columns
		if patch.Rows != nil {
			rows = *patch.Rows
		}
		if patch.Columns != nil {
			cols = *patch.Columns
		}
		if rows <= 0 || cols <= 0 {
			e.mu.Unlock()
			e.logger.Warn("rejecting deck resize", "deck_id", id, "err", domain.ErrInvalidDeckSize)
			return false
		}
		for _, sub := range e.decks {
			if sub.ParentDeckID == id {
				sub.Rows, sub.Columns = rows, cols
				children = append(children, domain.DeckEvent{Type: domain.EventDeckUpdated, Deck: sub.Clone()})
			}
		}
		d.Rows, d.Columns = rows, cols
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Enabled != nil {
		d.Enabled = *patch.Enabled
	}

	_ = e.persistLocked(ctx)
	updated := d.Clone()
	e.mu.Unlock()

	e.publish(children...)
	e.publish(domain.DeckEvent{Type: domain.EventDeckUpdated, Deck: updated})
	return true
}

// DeleteDeck removes a deck and, recursively, its sub-decks. Hotkeys on any
// removed deck are detached, and active-sub-deck entries pointing at removed
// decks are cleared.
func (e *Engine) DeleteDeck(ctx context.Context, id string) bool {
	e.mu.Lock()
	target := e.deckLocked(id)
	if target == nil {
		e.mu.Unlock()
		return false
	}

	doomed := map[string]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, d := range e.decks {
			if !doomed[d.ID] && doomed[d.ParentDeckID] {
				doomed[d.ID] = true
				changed = true
			}
		}
	}

	var events []domain.Event
	for _, h := range e.hotkeys {
		if doomed[h.DeckID] {
			h.Detach()
			events = append(events, domain.HotkeyEvent{Type: domain.EventHotkeyUpdated, Hotkey: h.Clone()})
		}
	}
	var removed []*domain.Deck
	e.decks = slices.DeleteFunc(e.decks, func(d *domain.Deck) bool {
		if doomed[d.ID] {
			removed = append(removed, d)
			return true
		}
		return false
	})
	for mainID, subID := range e.activeSubDecks {
		if doomed[mainID] || doomed[subID] {
			delete(e.activeSubDecks, mainID)
			if !doomed[mainID] {
				events = append(events, domain.SubDeckSwitched{MainDeckID: mainID})
			}
		}
	}
	if doomed[e.currentDeckID] {
		e.currentDeckID = ""
	}
	_ = e.persistLocked(ctx)
	e.mu.Unlock()

	for _, d := range removed {
		events = append(events, domain.DeckEvent{Type: domain.EventDeckDeleted, Deck: d})
	}
	e.logger.Debug("deck deleted", "deck_id", id, "cascade", len(removed)-1)
	e.publish(events...)
	return true
}

// SwitchToSubDeck shows subID in place of mainID's own grid. It returns false
// unless subID is a sub-deck of mainID.
func (e *Engine) SwitchToSubDeck(ctx context.Context, mainID, subID string) bool {
	e.mu.Lock()
	main, sub := e.deckLocked(mainID), e.deckLocked(subID)
	if main == nil || sub == nil || sub.ParentDeckID != mainID {
		e.mu.Unlock()
		e.logger.Warn("rejecting sub-deck switch", "deck_id", mainID, "sub_deck_id", subID)
		return false
	}
	e.activeSubDecks[mainID] = subID
	_ = e.persistLocked(ctx)
	e.mu.Unlock()

	e.publish(domain.SubDeckSwitched{MainDeckID: mainID, SubDeckID: subID})
	return true
}

// SwitchBackToMainDeck clears mainID's active sub-deck.
func (e *Engine) SwitchBackToMainDeck(ctx context.Context, mainID string) bool {
	e.mu.Lock()
	if e.deckLocked(mainID) == nil {
		e.mu.Unlock()
		return false
	}
	delete(e.activeSubDecks, mainID)
	_ = e.persistLocked(ctx)
	e.mu.Unlock()

	e.publish(domain.SubDeckSwitched{MainDeckID: mainID})
	return true
}

// SwitchToDeck makes id the current deck:
//   - a sub-deck is activated under its parent;
//   - a main deck showing a sub-deck reverts to its own grid;
//   - a main deck already current and showing itself is reported as already active.
func (e *Engine) SwitchToDeck(ctx context.Context, id string) bool {
	return e.switchToDeck(ctx, id) == nil
}

func (e *Engine) switchToDeck(ctx context.Context, id string) error {
	e.mu.Lock()
	target := e.deckLocked(id)
	if target == nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: %q", domain.ErrDeckNotFound, id)
	}

	var events []domain.Event
	alreadyActive := false
	switch {
	case target.IsSubDeck():
		e.activeSubDecks[target.ParentDeckID] = target.ID
		events = append(events, domain.SubDeckSwitched{MainDeckID: target.ParentDeckID, SubDeckID: target.ID})
	case e.activeSubDecks[target.ID] != "":
		delete(e.activeSubDecks, target.ID)
		events = append(events, domain.SubDeckSwitched{MainDeckID: target.ID})
	default:
		alreadyActive = e.currentDeckID == target.ID
	}
	e.currentDeckID = target.ID
	if len(events) > 0 {
		_ = e.persistLocked(ctx)
	}
	switched := target.Clone()
	e.mu.Unlock()

	events = append(events, domain.DeckSwitched{Deck: switched, AlreadyActive: alreadyActive})
	e.publish(events...)
	return nil
}

// CurrentDeck returns the deck last switched to.
func (e *Engine) CurrentDeck() (*domain.Deck, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.deckLocked(e.currentDeckID)
	if d == nil {
		return nil, false
	}
	return d.Clone(), true
}

// ActiveSubDeck returns the sub-deck id currently shown for mainID.
func (e *Engine) ActiveSubDeck(mainID string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	subID, ok := e.activeSubDecks[mainID]
	return subID, ok
}

// ActiveSubDecks returns a copy of the whole active-sub-deck map.
func (e *Engine) ActiveSubDecks() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]string, len(e.activeSubDecks))
	for k, v := range e.activeSubDecks {
		out[k] = v
	}
	return out
}

// ActiveDeck returns the deck whose grid is shown for mainID: its active
// sub-deck if any, otherwise the main deck itself.
func (e *Engine) ActiveDeck(mainID string) (*domain.Deck, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.activeDeckLocked(mainID)
	if d == nil {
		return nil, false
	}
	return d.Clone(), true
}

func (e *Engine) activeDeckLocked(mainID string) *domain.Deck {
	if subID, ok := e.activeSubDecks[mainID]; ok {
		if sub := e.deckLocked(subID); sub != nil {
			return sub
		}
	}
	return e.deckLocked(mainID)
}

// Grid lays out the deck currently shown for mainID.
func (e *Engine) Grid(mainID string) (domain.Grid, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.activeDeckLocked(mainID)
	if d == nil {
		return domain.Grid{}, false
	}
	hotkeys := make([]*domain.Hotkey, 0)
	for _, h := range e.hotkeys {
		if h.DeckID == d.ID {
			hotkeys = append(hotkeys, h.Clone())
		}
	}
	return domain.NewGrid(mainID, d.Clone(), hotkeys), true
}

// Deck returns a copy of the deck with the given id.
func (e *Engine) Deck(id string) (*domain.Deck, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.deckLocked(id)
	if d == nil {
		return nil, false
	}
	return d.Clone(), true
}

// Decks returns copies of all decks in creation order.
func (e *Engine) Decks() []*domain.Deck {
	return e.filterDecks(func(*domain.Deck) bool { return true })
}

// MainDecks returns the decks without a parent.
func (e *Engine) MainDecks() []*domain.Deck {
	return e.filterDecks(func(d *domain.Deck) bool { return !d.IsSubDeck() })
}

// SubDecks returns the sub-decks of parentID.
func (e *Engine) SubDecks(parentID string) []*domain.Deck {
	return e.filterDecks(func(d *domain.Deck) bool { return d.ParentDeckID == parentID && parentID != "" })
}

func (e *Engine) filterDecks(keep func(*domain.Deck) bool) []*domain.Deck {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*domain.Deck, 0, len(e.decks))
	for _, d := range e.decks {
		if keep(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}

func (e *Engine) deckLocked(id string) *domain.Deck {
	if id == "" {
		return nil
	}
	for _, d := range e.decks {
		if d.ID == id {
			return d
		}
	}
	return nil
}
