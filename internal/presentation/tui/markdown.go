package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// GridMarkdown renders the visible grid of a main deck as a markdown table.
func GridMarkdown(g domain.Grid) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", escape(g.Deck.Name))
	if g.Deck.IsSubDeck() {
		sb.WriteString("_sub-deck active_\n\n")
	}
	if g.Deck.Columns == 0 {
		return sb.String()
	}

	sb.WriteString("|   |")
	for c := 0; c < g.Deck.Columns; c++ {
		fmt.Fprintf(&sb, " %d |", c)
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", g.Deck.Columns))
	sb.WriteString("\n")

	for r, row := range g.Slots {
		fmt.Fprintf(&sb, "| **%d** |", r)
		for _, h := range row {
			sb.WriteString(" ")
			sb.WriteString(slotLabel(h))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func slotLabel(h *domain.Hotkey) string {
	if h == nil {
		return "·"
	}
	label := escape(h.Name)
	if label == "" {
		label = h.ID
	}
	if !h.Enabled {
		label = "~~" + label + "~~"
	}
	return label
}

// HotkeysMarkdown renders a hotkey listing.
func HotkeysMarkdown(hotkeys []*domain.Hotkey) string {
	if len(hotkeys) == 0 {
		return "_no hotkeys_\n"
	}
	var sb strings.Builder
	sb.WriteString("| ID | Name | Triggers | Actions | Placement |\n|---|---|---|---|---|\n")
	for _, h := range hotkeys {
		triggers := make([]string, 0, len(h.Triggers))
		for _, t := range h.Triggers {
			triggers = append(triggers, escape(t.Description()))
		}
		placement := "standalone"
		if !h.IsStandalone() {
			placement = fmt.Sprintf("%s (%d,%d)", h.DeckID, h.Position.Row, h.Position.Col)
		}
		name := escape(h.Name)
		if !h.Enabled {
			name += " (disabled)"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %d | %s |\n",
			h.ID, name, strings.Join(triggers, ", "), len(h.Actions), placement)
	}
	return sb.String()
}

// DecksMarkdown renders main decks with their sub-decks nested below.
func DecksMarkdown(mains []*domain.Deck, subs func(string) []*domain.Deck, current string, active map[string]string) string {
	if len(mains) == 0 {
		return "_no decks_\n"
	}
	var sb strings.Builder
	for _, d := range mains {
		marker := ""
		if d.ID == current {
			marker = " ◀ current"
		}
		fmt.Fprintf(&sb, "- **%s** `%s` %d×%d%s\n", escape(d.Name), d.ID, d.Rows, d.Columns, marker)
		for _, s := range subs(d.ID) {
			state := ""
			if active[d.ID] == s.ID {
				state = " (active)"
			}
			fmt.Fprintf(&sb, "  - %s `%s`%s\n", escape(s.Name), s.ID, state)
		}
	}
	return sb.String()
}

// StatsMarkdown renders engine statistics.
func StatsMarkdown(s domain.Stats) string {
	current := s.CurrentDeck
	if current == "" {
		current = "None"
	}
	return fmt.Sprintf(`| Metric | Value |
|---|---|
| Hotkeys | %d (%d enabled) |
| Decks | %d |
| Current deck | %s |
| Executions | %d |
| Actions per hotkey | %.2f |
`, s.TotalHotkeys, s.EnabledHotkeys, s.TotalDecks, escape(current), s.TotalExecutions, s.AverageActionsPerHotkey)
}

// HistoryMarkdown renders the most recent executions first.
func HistoryMarkdown(records []domain.ExecutionRecord, limit int) string {
	if len(records) == 0 {
		return "_no executions_\n"
	}
	var sb strings.Builder
	sb.WriteString("| Time | Hotkey | Result |\n|---|---|---|\n")
	for i := len(records) - 1; i >= 0 && (limit <= 0 || len(records)-i <= limit); i-- {
		r := records[i]
		result := "✔"
		if !r.Success {
			result = "✘ " + escape(r.Error)
		}
		fmt.Fprintf(&sb, "| %s | `%s` | %s |\n", r.Timestamp.Format("15:04:05"), r.HotkeyID, result)
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
