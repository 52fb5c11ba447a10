package domain

import (
	"encoding/json"
	"time"
)

// Default grid size of a new main deck.
const (
	DefaultDeckRows    = 4
	DefaultDeckColumns = 4
)

// Deck is a rows×columns grid of hotkey slots.
// A deck with a ParentDeckID is a sub-deck; its size always mirrors the parent's.
type Deck struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
	Enabled      bool      `json:"enabled"`
	ParentDeckID string    `json:"parentDeckId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsSubDeck is derived from ParentDeckID.
func (d *Deck) IsSubDeck() bool {
	return d.ParentDeckID != ""
}

// Contains reports whether p lies inside the grid.
func (d *Deck) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Columns
}

// Clone returns a copy of the deck.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	out := *d
	return &out
}

// MarshalJSON adds the derived isSubDeck flag for presentation clients.
// The flag is ignored when decoding.
func (d Deck) MarshalJSON() ([]byte, error) {
	type alias Deck
	return json.Marshal(struct {
		alias
		IsSubDeck bool `json:"isSubDeck"`
	}{alias: alias(d), IsSubDeck: d.IsSubDeck()})
}
