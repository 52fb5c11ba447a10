package domain

// Grid is the slot matrix of the deck currently shown for a main deck.
// Slots[row][col] is nil for an empty slot.
type Grid struct {
	MainDeckID string      `json:"mainDeckId"`
	Deck       *Deck       `json:"deck"`
	Slots      [][]*Hotkey `json:"slots"`
}

// NewGrid lays out the hotkeys positioned on deck. Hotkeys outside the grid are skipped.
func NewGrid(mainDeckID string, deck *Deck, hotkeys []*Hotkey) Grid {
	slots := make([][]*Hotkey, deck.Rows)
	for r := range slots {
		slots[r] = make([]*Hotkey, deck.Columns)
	}
	for _, h := range hotkeys {
		if h.DeckID != deck.ID || h.Position == nil || !deck.Contains(*h.Position) {
			continue
		}
		slots[h.Position.Row][h.Position.Col] = h
	}
	return Grid{MainDeckID: mainDeckID, Deck: deck, Slots: slots}
}

// At returns the hotkey at p, or nil.
func (g Grid) At(p Position) *Hotkey {
	if g.Deck == nil || !g.Deck.Contains(p) {
		return nil
	}
	return g.Slots[p.Row][p.Col]
}
