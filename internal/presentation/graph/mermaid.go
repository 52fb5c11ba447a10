package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// Overlay contains navigation state to visualize on the graph.
type Overlay struct {
	CurrentDeck    string
	ActiveSubDecks map[string]string
}

// GenerateMermaid produces a Mermaid flowchart of the deck hierarchy.
// It applies semantic styling:
// - Main deck: [Rectangle]
// - Sub-deck: ([Stadium])
// - Hotkey: [/Parallelogram/]
// Deck switch actions are drawn as dotted edges from the hotkey to its target.
func GenerateMermaid(decks []*domain.Deck, hotkeys []*domain.Hotkey, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	known := make(map[string]bool, len(decks))
	for _, d := range decks {
		known[d.ID] = true
	}

	for _, d := range decks {
		safeID := sanitizeMermaidID(d.ID)
		opener, closer := "[", "]"
		if d.IsSubDeck() {
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s <br/> %d×%d\"%s\n", safeID, opener, quote(d.Name), d.Rows, d.Columns, closer)
		if d.IsSubDeck() && known[d.ParentDeckID] {
			fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeMermaidID(d.ParentDeckID), safeID)
		}
	}

	for _, h := range hotkeys {
		if h.IsStandalone() || !known[h.DeckID] {
			continue
		}
		safeID := sanitizeMermaidID(h.ID)
		fmt.Fprintf(&sb, "    %s[/\"%s\"/]\n", safeID, quote(h.Name))
		fmt.Fprintf(&sb, "    %s -- \"%d,%d\" --- %s\n", sanitizeMermaidID(h.DeckID), h.Position.Row, h.Position.Col, safeID)

		for _, a := range h.SortedActions() {
			target := switchTarget(a)
			if target == "" || !known[target] {
				continue
			}
			fmt.Fprintf(&sb, "    %s -. \"%s\" .-> %s\n", safeID, a.Type, sanitizeMermaidID(target))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef active fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, d := range decks {
			if sub, ok := overlay.ActiveSubDecks[d.ID]; ok && known[sub] {
				fmt.Fprintf(&sb, "    class %s active;\n", sanitizeMermaidID(sub))
			}
		}
		if overlay.CurrentDeck != "" && known[overlay.CurrentDeck] {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentDeck))
		}
	}

	return sb.String()
}

func switchTarget(a domain.Action) string {
	var key string
	switch a.Type {
	case domain.ActionDeckSwitch:
		key = "deckId"
	case domain.ActionSubDeckSwitch:
		key = "subDeckId"
	default:
		return ""
	}
	id, _ := a.Data[key].(string)
	return id
}

func quote(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
