package terminal_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hotdeck/internal/adapters/terminal"
	"github.com/aretw0/hotdeck/pkg/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []domain.KeyEvent
	}{
		{"letter", "s", []domain.KeyEvent{{Key: "s", Code: "KeyS"}}},
		{"upper", "S", []domain.KeyEvent{{Key: "S", Code: "KeyS", ShiftKey: true}}},
		{"digit", "7", []domain.KeyEvent{{Key: "7", Code: "Digit7"}}},
		{"space", " ", []domain.KeyEvent{{Key: " ", Code: "Space"}}},
		{"shifted symbol", "!", []domain.KeyEvent{{Key: "!", Code: "Digit1", ShiftKey: true}}},
		{"punctuation", "/", []domain.KeyEvent{{Key: "/", Code: "Slash"}}},
		{"ctrl letter", "\x13", []domain.KeyEvent{{Key: "s", Code: "KeyS", CtrlKey: true}}},
		{"enter", "\r", []domain.KeyEvent{{Key: "Enter", Code: "Enter"}}},
		{"tab", "\t", []domain.KeyEvent{{Key: "Tab", Code: "Tab"}}},
		{"backspace", "\x7f", []domain.KeyEvent{{Key: "Backspace", Code: "Backspace"}}},
		{"escape", "\x1b", []domain.KeyEvent{{Key: "Escape", Code: "Escape"}}},
		{"alt letter", "\x1bx", []domain.KeyEvent{{Key: "x", Code: "KeyX", AltKey: true}}},
		{"arrow", "\x1b[A", []domain.KeyEvent{{Key: "ArrowUp", Code: "ArrowUp"}}},
		{"ctrl shift arrow", "\x1b[1;6D", []domain.KeyEvent{{Key: "ArrowLeft", Code: "ArrowLeft", CtrlKey: true, ShiftKey: true}}},
		{"ss3 function key", "\x1bOQ", []domain.KeyEvent{{Key: "F2", Code: "F2"}}},
		{"tilde function key", "\x1b[15~", []domain.KeyEvent{{Key: "F5", Code: "F5"}}},
		{"delete", "\x1b[3~", []domain.KeyEvent{{Key: "Delete", Code: "Delete"}}},
		{"unknown csi dropped", "\x1b[99~a", []domain.KeyEvent{{Key: "a", Code: "KeyA"}}},
		{"utf8", "é", []domain.KeyEvent{{Key: "é"}}},
		{"burst", "ab", []domain.KeyEvent{{Key: "a", Code: "KeyA"}, {Key: "b", Code: "KeyB"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terminal.Decode([]byte(tt.in)))
		})
	}
}

func TestDecode_DescribesLikeBrowser(t *testing.T) {
	evs := terminal.Decode([]byte("\x13"))
	require.Len(t, evs, 1)
	assert.Equal(t, "Ctrl+S", domain.DescribeKey(evs[0]))
}

func drain(ch <-chan domain.InputEvent) []domain.InputEvent {
	var out []domain.InputEvent
	for ev := range ch {
		out = append(out, ev)
	}
	return out
}

func TestSource_EndOfInput(t *testing.T) {
	src := terminal.New(strings.NewReader("a\x1b[B"), nil)
	ch, err := src.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.InputEvent{
		domain.KeyEvent{Key: "a", Code: "KeyA"},
		domain.KeyEvent{Key: "ArrowDown", Code: "ArrowDown"},
	}, drain(ch))
}

func TestSource_CtrlCEndsInput(t *testing.T) {
	src := terminal.New(strings.NewReader("q\x03z"), nil)
	ch, err := src.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.InputEvent{domain.KeyEvent{Key: "q", Code: "KeyQ"}}, drain(ch))
}

func TestSource_CancelWhileBlocked(t *testing.T) {
	r, w := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := terminal.New(r, nil).Start(ctx)
	require.NoError(t, err)

	cancel()
	// Release the pending read the way the next key press would.
	_, _ = w.Write([]byte("x"))
	_ = w.Close()
	for range ch {
	}
}

func TestHelpers_NonTerminal(t *testing.T) {
	assert.False(t, terminal.IsTerminal(strings.NewReader("")))
	assert.Equal(t, 80, terminal.Width(&bytes.Buffer{}, 80))
}
