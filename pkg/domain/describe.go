package domain

import (
	"fmt"
	goruntime "runtime"
	"strings"
)

// MetaLabel is the display name of the meta modifier on the current platform.
var MetaLabel = metaLabelFor(goruntime.GOOS)

func metaLabelFor(goos string) string {
	if goos == "darwin" {
		return "Cmd"
	}
	return "Win"
}

var specialKeyNames = map[string]string{
	" ":          "Space",
	"ArrowUp":    "↑",
	"ArrowDown":  "↓",
	"ArrowLeft":  "←",
	"ArrowRight": "→",
	"Enter":      "⏎",
	"Escape":     "Esc",
	"Backspace":  "⌫",
	"Delete":     "Del",
	"Tab":        "⇥",
}

// DescribeMIDI renders a message as e.g. "CC 7 (CH1)" or "Note 60 (CH10)".
func DescribeMIDI(m MIDIMessage) string {
	kind := m.Type
	switch m.Type {
	case MIDIControlChange:
		kind = "CC"
	case MIDINoteOn, MIDINoteOff:
		kind = "Note"
	}
	return fmt.Sprintf("%s %d (CH%d)", kind, m.ControllerOrNote(), m.Channel+1)
}

// DescribeKey renders a key combination as e.g. "Ctrl+Shift+S".
func DescribeKey(ev KeyEvent) string {
	var mods []string
	if ev.MetaKey {
		mods = append(mods, MetaLabel)
	}
	if ev.CtrlKey {
		mods = append(mods, "Ctrl")
	}
	if ev.AltKey {
		mods = append(mods, "Alt")
	}
	if ev.ShiftKey {
		mods = append(mods, "Shift")
	}

	name := ev.Key
	if name == "" {
		name = ev.Code
	}
	if name == "" {
		name = "Unknown"
	}

	if special, ok := specialKeyNames[name]; ok {
		name = special
	} else if len([]rune(name)) == 1 {
		name = strings.ToUpper(name)
	}

	if len(mods) == 0 {
		return name
	}
	return strings.Join(mods, "+") + "+" + name
}
