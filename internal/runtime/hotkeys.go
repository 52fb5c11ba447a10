package runtime

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// CreateHotkey adds a hotkey and never fails: missing fields get defaults,
// invalid triggers or actions are dropped, and an unusable placement leaves
// the hotkey standalone.
func (e *Engine) CreateHotkey(ctx context.Context, opts domain.HotkeyOptions) *domain.Hotkey {
	now := e.now()

	e.mu.Lock()
	h := &domain.Hotkey{
		ID:          domain.NewID(domain.PrefixHotkey),
		Name:        opts.Name,
		Description: opts.Description,
		Triggers:    []domain.Trigger{},
		Actions:     []domain.Action{},
		Enabled:     true,
		Order:       len(e.hotkeys),
		CreatedAt:   now,
	}
	if h.Name == "" {
		h.Name = fmt.Sprintf("Hotkey %d", len(e.hotkeys)+1)
	}
	if opts.Enabled != nil {
		h.Enabled = *opts.Enabled
	}
	for _, t := range opts.Triggers {
		if !t.Valid() {
			e.logger.Warn("dropping invalid trigger", "hotkey_id", h.ID, "kind", t.Kind)
			continue
		}
		h.SetTrigger(t.Clone())
	}
	for _, a := range opts.Actions {
		if err := a.Validate(); err != nil {
			e.logger.Warn("dropping invalid action", "hotkey_id", h.ID, "action_type", a.Type, "err", err)
			continue
		}
		h.Actions = append(h.Actions, newAction(a, nextActionOrder(h)))
	}
	if opts.DeckID != "" {
		if err := e.checkSlotLocked(opts.DeckID, opts.Position, ""); err != nil {
			e.logger.Warn("creating standalone hotkey", "hotkey_id", h.ID, "deck_id", opts.DeckID, "err", err)
		} else {
			h.Place(opts.DeckID, *opts.Position)
		}
	}

	e.hotkeys = append(e.hotkeys, h)
	_ = e.persistLocked(ctx)
	created, out := h.Clone(), h.Clone()
	e.mu.Unlock()

	e.logger.Debug("hotkey created", "hotkey_id", h.ID, "name", h.Name)
	e.publish(domain.HotkeyEvent{Type: domain.EventHotkeyCreated, Hotkey: created})
	return out
}

// UpdateHotkey merges patch into the hotkey. It returns false when the id is
// unknown or the patch carries an invalid trigger or action.
func (e *Engine) UpdateHotkey(ctx context.Context, id string, patch domain.HotkeyPatch) bool {
	if err := validatePatch(patch); err != nil {
		e.logger.Warn("rejecting hotkey update", "hotkey_id", id, "err", err)
		return false
	}

	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		if patch.Name != nil {
			h.Name = *patch.Name
		}
		if patch.Description != nil {
			h.Description = *patch.Description
		}
		if patch.Enabled != nil {
			h.Enabled = *patch.Enabled
		}
		if patch.Order != nil {
			h.Order = *patch.Order
		}
		if patch.Triggers != nil {
			h.Triggers = []domain.Trigger{}
			for _, t := range patch.Triggers {
				h.SetTrigger(t.Clone())
			}
		}
		if patch.Actions != nil {
			h.Actions = make([]domain.Action, 0, len(patch.Actions))
			for i, a := range patch.Actions {
				h.Actions = append(h.Actions, newAction(a, i))
			}
		}
		return true
	})
}

func validatePatch(patch domain.HotkeyPatch) error {
	kinds := make(map[domain.TriggerKind]struct{}, len(patch.Triggers))
	for _, t := range patch.Triggers {
		if !t.Valid() {
			return fmt.Errorf("%w: kind %q", domain.ErrInvalidTrigger, t.Kind)
		}
		if _, dup := kinds[t.Kind]; dup {
			return fmt.Errorf("%w: duplicate %s trigger", domain.ErrInvalidTrigger, t.Kind)
		}
		kinds[t.Kind] = struct{}{}
	}
	for _, a := range patch.Actions {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DeleteHotkey removes a hotkey. It returns false when the id is unknown.
func (e *Engine) DeleteHotkey(ctx context.Context, id string) bool {
	e.mu.Lock()
	idx := e.hotkeyIndexLocked(id)
	if idx < 0 {
		e.mu.Unlock()
		return false
	}
	removed := e.hotkeys[idx]
	e.hotkeys = slices.Delete(e.hotkeys, idx, idx+1)
	_ = e.persistLocked(ctx)
	e.mu.Unlock()

	e.logger.Debug("hotkey deleted", "hotkey_id", id)
	e.publish(domain.HotkeyEvent{Type: domain.EventHotkeyDeleted, Hotkey: removed})
	return true
}

// DuplicateHotkey copies a hotkey's name, triggers and actions into a new hotkey.
// The copy takes the first free slot of the same deck, or stays standalone.
func (e *Engine) DuplicateHotkey(ctx context.Context, id string) (*domain.Hotkey, bool) {
	src, ok := e.Hotkey(id)
	if !ok {
		return nil, false
	}

	opts := domain.HotkeyOptions{
		Name:        src.Name + " (Copy)",
		Description: src.Description,
		Enabled:     &src.Enabled,
		Triggers:    src.Triggers,
	}
	for _, a := range src.SortedActions() {
		a.ID = ""
		opts.Actions = append(opts.Actions, a)
	}
	if src.DeckID != "" {
		if pos, free := e.freeSlot(src.DeckID); free {
			opts.DeckID = src.DeckID
			opts.Position = &pos
		}
	}
	return e.CreateHotkey(ctx, opts), true
}

// AddTrigger validates t and replaces any trigger of the same kind.
func (e *Engine) AddTrigger(ctx context.Context, id string, t domain.Trigger) bool {
	if !t.Valid() {
		e.logger.Warn("rejecting trigger", "hotkey_id", id, "kind", t.Kind)
		return false
	}
	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		h.SetTrigger(t.Clone())
		return true
	})
}

// RemoveTrigger drops the trigger of the given kind.
func (e *Engine) RemoveTrigger(ctx context.Context, id string, kind domain.TriggerKind) bool {
	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		return h.RemoveTrigger(kind)
	})
}

// AddAction validates a, assigns its id and order, and appends it.
func (e *Engine) AddAction(ctx context.Context, id string, a domain.Action) (domain.Action, bool) {
	if err := a.Validate(); err != nil {
		e.logger.Warn("rejecting action", "hotkey_id", id, "action_type", a.Type, "err", err)
		return domain.Action{}, false
	}

	var added domain.Action
	ok := e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		a.ID = ""
		added = newAction(a, nextActionOrder(h))
		h.Actions = append(h.Actions, added)
		return true
	})
	return added.Clone(), ok
}

// RemoveAction drops one action by id.
func (e *Engine) RemoveAction(ctx context.Context, id, actionID string) bool {
	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		before := len(h.Actions)
		h.Actions = slices.DeleteFunc(h.Actions, func(a domain.Action) bool { return a.ID == actionID })
		return len(h.Actions) != before
	})
}

// ReorderActions renumbers the actions to follow actionIDs, which must name
// every action of the hotkey exactly once.
func (e *Engine) ReorderActions(ctx context.Context, id string, actionIDs []string) bool {
	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		if len(actionIDs) != len(h.Actions) {
			return false
		}
		byID := make(map[string]domain.Action, len(h.Actions))
		for _, a := range h.Actions {
			byID[a.ID] = a
		}
		reordered := make([]domain.Action, 0, len(actionIDs))
		for i, aid := range actionIDs {
			a, ok := byID[aid]
			if !ok {
				return false
			}
			delete(byID, aid)
			a.Order = i
			reordered = append(reordered, a)
		}
		h.Actions = reordered
		return true
	})
}

// MoveHotkey places a hotkey on a free slot of a deck.
func (e *Engine) MoveHotkey(ctx context.Context, id, deckID string, pos domain.Position) bool {
	e.mu.Lock()
	err := e.checkSlotLocked(deckID, &pos, id)
	e.mu.Unlock()
	if err != nil {
		e.logger.Warn("rejecting move", "hotkey_id", id, "deck_id", deckID, "err", err)
		return false
	}
	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		h.Place(deckID, pos)
		return true
	})
}

// DetachHotkey makes a hotkey standalone.
func (e *Engine) DetachHotkey(ctx context.Context, id string) bool {
	return e.mutateHotkey(ctx, id, func(h *domain.Hotkey) bool {
		if h.IsStandalone() {
			return false
		}
		h.Detach()
		return true
	})
}

// mutateHotkey applies fn under the lock. When fn returns true the snapshot is
// persisted and hotkeyUpdated is published.
func (e *Engine) mutateHotkey(ctx context.Context, id string, fn func(h *domain.Hotkey) bool) bool {
	e.mu.Lock()
	h := e.hotkeyLocked(id)
	if h == nil || !fn(h) {
		e.mu.Unlock()
		return false
	}
	_ = e.persistLocked(ctx)
	updated := h.Clone()
	e.mu.Unlock()

	e.publish(domain.HotkeyEvent{Type: domain.EventHotkeyUpdated, Hotkey: updated})
	return true
}

// Hotkey returns a copy of the hotkey with the given id.
func (e *Engine) Hotkey(id string) (*domain.Hotkey, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := e.hotkeyLocked(id)
	if h == nil {
		return nil, false
	}
	return h.Clone(), true
}

// Hotkeys returns copies of all hotkeys in insertion order.
func (e *Engine) Hotkeys() []*domain.Hotkey {
	return e.filterHotkeys(func(*domain.Hotkey) bool { return true })
}

// HotkeysByDeck returns the hotkeys positioned on deckID.
func (e *Engine) HotkeysByDeck(deckID string) []*domain.Hotkey {
	return e.filterHotkeys(func(h *domain.Hotkey) bool { return h.DeckID == deckID })
}

// StandaloneHotkeys returns the hotkeys without a deck, sorted by Order.
func (e *Engine) StandaloneHotkeys() []*domain.Hotkey {
	out := e.filterHotkeys((*domain.Hotkey).IsStandalone)
	slices.SortStableFunc(out, func(a, b *domain.Hotkey) int { return a.Order - b.Order })
	return out
}

func (e *Engine) filterHotkeys(keep func(*domain.Hotkey) bool) []*domain.Hotkey {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*domain.Hotkey, 0, len(e.hotkeys))
	for _, h := range e.hotkeys {
		if keep(h) {
			out = append(out, h.Clone())
		}
	}
	return out
}

func (e *Engine) hotkeyIndexLocked(id string) int {
	return slices.IndexFunc(e.hotkeys, func(h *domain.Hotkey) bool { return h.ID == id })
}

func (e *Engine) hotkeyLocked(id string) *domain.Hotkey {
	if idx := e.hotkeyIndexLocked(id); idx >= 0 {
		return e.hotkeys[idx]
	}
	return nil
}

// checkSlotLocked verifies that pos is a free slot of deckID. The hotkey
// named by self may already occupy it.
func (e *Engine) checkSlotLocked(deckID string, pos *domain.Position, self string) error {
	d := e.deckLocked(deckID)
	if d == nil {
		return fmt.Errorf("%w: %q", domain.ErrDeckNotFound, deckID)
	}
	if pos == nil {
		return fmt.Errorf("position is required on deck %q", deckID)
	}
	if !d.Contains(*pos) {
		return fmt.Errorf("position (%d,%d) outside %dx%d deck", pos.Row, pos.Col, d.Rows, d.Columns)
	}
	for _, h := range e.hotkeys {
		if h.ID != self && h.DeckID == deckID && h.Position != nil && *h.Position == *pos {
			return fmt.Errorf("slot (%d,%d) is taken by %q", pos.Row, pos.Col, h.ID)
		}
	}
	return nil
}

// freeSlot returns the first empty slot of deckID in row-major order.
func (e *Engine) freeSlot(deckID string) (domain.Position, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.deckLocked(deckID)
	if d == nil {
		return domain.Position{}, false
	}
	for r := range d.Rows {
		for c := range d.Columns {
			pos := domain.Position{Row: r, Col: c}
			if e.checkSlotLocked(deckID, &pos, "") == nil {
				return pos, true
			}
		}
	}
	return domain.Position{}, false
}

func newAction(a domain.Action, order int) domain.Action {
	a = a.Clone()
	if a.ID == "" {
		a.ID = domain.NewID(domain.PrefixAction)
	}
	a.Order = order
	return a
}

func nextActionOrder(h *domain.Hotkey) int {
	next := 0
	for _, a := range h.Actions {
		if a.Order >= next {
			next = a.Order + 1
		}
	}
	return next
}
