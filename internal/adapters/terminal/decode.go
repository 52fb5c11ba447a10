package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// Keys reachable through CSI "~" sequences, by numeric parameter.
var tildeKeys = map[string]string{
	"1": "Home", "2": "Insert", "3": "Delete", "4": "End", "5": "PageUp", "6": "PageDown",
	"11": "F1", "12": "F2", "13": "F3", "14": "F4",
	"15": "F5", "17": "F6", "18": "F7", "19": "F8", "20": "F9", "21": "F10", "23": "F11", "24": "F12",
}

// Keys reachable through a final byte after CSI or SS3.
var finalKeys = map[byte]string{
	'A': "ArrowUp", 'B': "ArrowDown", 'C': "ArrowRight", 'D': "ArrowLeft",
	'H': "Home", 'F': "End",
	'P': "F1", 'Q': "F2", 'R': "F3", 'S': "F4",
}

// US layout: punctuation key codes, shifted symbols map to their base key.
var punctCodes = map[rune]string{
	'-': "Minus", '=': "Equal", '[': "BracketLeft", ']': "BracketRight", '\\': "Backslash",
	';': "Semicolon", '\'': "Quote", ',': "Comma", '.': "Period", '/': "Slash", '`': "Backquote",
}

var shiftedPunct = map[rune]string{
	'_': "Minus", '+': "Equal", '{': "BracketLeft", '}': "BracketRight", '|': "Backslash",
	':': "Semicolon", '"': "Quote", '<': "Comma", '>': "Period", '?': "Slash", '~': "Backquote",
	'!': "Digit1", '@': "Digit2", '#': "Digit3", '$': "Digit4", '%': "Digit5",
	'^': "Digit6", '&': "Digit7", '*': "Digit8", '(': "Digit9", ')': "Digit0",
}

// Decode converts one chunk of raw terminal input into key events.
// A chunk is assumed to hold whole sequences, which is how terminals write them.
func Decode(b []byte) []domain.KeyEvent {
	var out []domain.KeyEvent
	for i := 0; i < len(b); {
		if b[i] != 0x1b {
			ev, size := decodeRune(b[i:])
			out = append(out, ev)
			i += size
			continue
		}

		if i+1 >= len(b) || b[i+1] == 0x1b {
			out = append(out, named("Escape"))
			i++
			continue
		}

		switch b[i+1] {
		case '[':
			ev, size, ok := decodeCSI(b[i+2:])
			if ok {
				out = append(out, ev)
			}
			i += 2 + size
		case 'O':
			if i+2 < len(b) {
				if key, ok := finalKeys[b[i+2]]; ok {
					out = append(out, named(key))
				}
				i += 3
				continue
			}
			out = append(out, altOf(decodeRune(b[i+1:])))
			i += 2
		default:
			ev, size := decodeRune(b[i+1:])
			ev.AltKey = true
			out = append(out, ev)
			i += 1 + size
		}
	}
	return out
}

func altOf(ev domain.KeyEvent, _ int) domain.KeyEvent {
	ev.AltKey = true
	return ev
}

// decodeCSI parses the bytes after ESC [ up to and including the final byte.
func decodeCSI(b []byte) (domain.KeyEvent, int, bool) {
	end := -1
	for j, c := range b {
		if c >= 0x40 && c <= 0x7e {
			end = j
			break
		}
	}
	if end < 0 {
		return domain.KeyEvent{}, len(b), false
	}

	params := strings.Split(string(b[:end]), ";")
	final := b[end]

	var key string
	if final == '~' {
		key = tildeKeys[params[0]]
	} else {
		key = finalKeys[final]
	}
	if key == "" {
		return domain.KeyEvent{}, end + 1, false
	}

	ev := named(key)
	if len(params) > 1 {
		applyModifiers(&ev, params[1])
	}
	return ev, end + 1, true
}

// applyModifiers decodes the xterm modifier parameter (1 + bitmask).
func applyModifiers(ev *domain.KeyEvent, param string) {
	n := 0
	for _, c := range param {
		if c < '0' || c > '9' {
			return
		}
		n = n*10 + int(c-'0')
	}
	mask := n - 1
	ev.ShiftKey = mask&1 != 0
	ev.AltKey = mask&2 != 0
	ev.CtrlKey = mask&4 != 0
	ev.MetaKey = mask&8 != 0
}

func decodeRune(b []byte) (domain.KeyEvent, int) {
	c := b[0]
	switch {
	case c == '\r' || c == '\n':
		return named("Enter"), 1
	case c == '\t':
		return named("Tab"), 1
	case c == 0x7f || c == 0x08:
		return named("Backspace"), 1
	case c == 0:
		return domain.KeyEvent{Key: " ", Code: "Space", CtrlKey: true}, 1
	case c < 0x1b:
		letter := string(rune('a' + c - 1))
		return domain.KeyEvent{Key: letter, Code: "Key" + strings.ToUpper(letter), CtrlKey: true}, 1
	case c < 0x20:
		return domain.KeyEvent{Key: string(rune(c)), Code: "", CtrlKey: true}, 1
	}

	r, size := utf8.DecodeRune(b)
	return printable(r), size
}

func printable(r rune) domain.KeyEvent {
	s := string(r)
	switch {
	case r == ' ':
		return domain.KeyEvent{Key: " ", Code: "Space"}
	case r >= 'a' && r <= 'z':
		return domain.KeyEvent{Key: s, Code: "Key" + strings.ToUpper(s)}
	case r >= 'A' && r <= 'Z':
		return domain.KeyEvent{Key: s, Code: "Key" + s, ShiftKey: true}
	case r >= '0' && r <= '9':
		return domain.KeyEvent{Key: s, Code: "Digit" + s}
	}
	if code, ok := punctCodes[r]; ok {
		return domain.KeyEvent{Key: s, Code: code}
	}
	if code, ok := shiftedPunct[r]; ok {
		return domain.KeyEvent{Key: s, Code: code, ShiftKey: true}
	}
	return domain.KeyEvent{Key: s}
}

func named(key string) domain.KeyEvent {
	return domain.KeyEvent{Key: key, Code: key}
}
