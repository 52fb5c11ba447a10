package domain_test

import (
	"testing"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func validConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Version: domain.ConfigurationVersion,
		Decks: []*domain.Deck{
			{ID: "main", Name: "Main", Rows: 2, Columns: 2, Enabled: true},
			{ID: "sub", Name: "Sub", Rows: 2, Columns: 2, Enabled: true, ParentDeckID: "main"},
		},
		Hotkeys: []*domain.Hotkey{
			{ID: "hk_a", Name: "A", Enabled: true, DeckID: "main", Position: &domain.Position{}},
			{ID: "hk_b", Name: "B", Enabled: true, Triggers: []domain.Trigger{domain.NewClickTrigger("b")}},
		},
		ActiveSubDecks: map[string]string{"main": "sub"},
	}
}

func TestConfiguration_CheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.0", true},
		{"1", true},
		{"2.3.1", true},
		{"v1.2", true},
		{"", false},
		{"0.9", false},
		{"beta", false},
	}
	for _, tc := range tests {
		t.Run(tc.version, func(t *testing.T) {
			c := &domain.Configuration{Version: tc.version}
			err := c.CheckVersion()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrUnsupportedVersion)
			}
		})
	}
}

func TestConfiguration_Validate(t *testing.T) {
	assert.NoError(t, validConfiguration().Validate())

	tests := []struct {
		name   string
		mutate func(c *domain.Configuration)
	}{
		{"duplicate deck", func(c *domain.Configuration) { c.Decks[1].ID = "main" }},
		{"zero rows", func(c *domain.Configuration) { c.Decks[0].Rows = 0 }},
		{"missing parent", func(c *domain.Configuration) { c.Decks[1].ParentDeckID = "ghost" }},
		{"nested sub-deck", func(c *domain.Configuration) {
			c.Decks = append(c.Decks, &domain.Deck{ID: "deep", Rows: 2, Columns: 2, ParentDeckID: "sub"})
		}},
		{"sub-deck size drift", func(c *domain.Configuration) { c.Decks[1].Columns = 5 }},
		{"duplicate hotkey", func(c *domain.Configuration) { c.Hotkeys[1].ID = "hk_a" }},
		{"position without deck", func(c *domain.Configuration) { c.Hotkeys[1].Position = &domain.Position{} }},
		{"deck without position", func(c *domain.Configuration) { c.Hotkeys[0].Position = nil }},
		{"unknown deck", func(c *domain.Configuration) { c.Hotkeys[0].DeckID = "ghost" }},
		{"invalid trigger", func(c *domain.Configuration) {
			c.Hotkeys[1].Triggers = append(c.Hotkeys[1].Triggers, domain.Trigger{Kind: "joystick"})
		}},
		{"duplicate trigger kind", func(c *domain.Configuration) {
			c.Hotkeys[1].Triggers = append(c.Hotkeys[1].Triggers, domain.NewClickTrigger("again"))
		}},
		{"invalid action", func(c *domain.Configuration) {
			c.Hotkeys[1].Actions = []domain.Action{{Type: "teleport", Data: map[string]any{}}}
		}},
		{"active sub-deck of wrong parent", func(c *domain.Configuration) { c.ActiveSubDecks = map[string]string{"sub": "main"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfiguration()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), domain.ErrInvalidConfiguration)
		})
	}
}
