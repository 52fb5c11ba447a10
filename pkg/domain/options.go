package domain

// HotkeyOptions are the inputs of CreateHotkey. Every field is optional.
type HotkeyOptions struct {
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Enabled     *bool     `json:"enabled,omitempty"`
	Triggers    []Trigger `json:"triggers,omitempty"`
	Actions     []Action  `json:"actions,omitempty"`
	DeckID      string    `json:"deckId,omitempty"`
	Position    *Position `json:"position,omitempty"`
}

// HotkeyPatch is a partial update. Nil fields are left unchanged.
// Triggers and Actions, when non-nil, replace the whole sequence.
type HotkeyPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Enabled     *bool     `json:"enabled,omitempty"`
	Order       *int      `json:"order,omitempty"`
	Triggers    []Trigger `json:"triggers,omitempty"`
	Actions     []Action  `json:"actions,omitempty"`
}

// DeckOptions are the inputs of CreateDeck.
type DeckOptions struct {
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Rows         int    `json:"rows,omitempty"`
	Columns      int    `json:"columns,omitempty"`
	Enabled      *bool  `json:"enabled,omitempty"`
	ParentDeckID string `json:"parentDeckId,omitempty"`
}

// DeckPatch is a partial update. Nil fields are left unchanged.
// Rows and Columns are ignored on sub-decks, which always mirror their parent.
type DeckPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Rows        *int    `json:"rows,omitempty"`
	Columns     *int    `json:"columns,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
}

// LearnFunc receives the trigger captured by a learning cycle.
type LearnFunc func(Trigger)
