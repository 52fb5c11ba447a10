// Package terminal reads key presses from a raw terminal and delivers them as
// trigger input.
package terminal

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/term"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

var _ ports.TriggerSource = (*Source)(nil)

type fdReader interface {
	io.Reader
	Fd() uintptr
}

// Source is a ports.TriggerSource over a terminal (usually os.Stdin).
//
// When the reader is a terminal it is switched to raw mode for the lifetime
// of Start and restored when ctx is done or input ends. Ctrl+C ends input
// because raw mode no longer turns it into a signal.
type Source struct {
	in     io.Reader
	logger *slog.Logger
}

// New creates a Source reading from in.
func New(in io.Reader, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Source{in: in, logger: logger}
}

// IsTerminal reports whether r is attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(fdReader)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w, or fallback when w is not a terminal.
func Width(w io.Writer, fallback int) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// Start begins reading. The returned channel closes on Ctrl+C, end of input or
// a read error. A read blocked in the kernel is only released by the next key
// press; the terminal itself is restored as soon as ctx is done.
func (s *Source) Start(ctx context.Context) (<-chan domain.InputEvent, error) {
	restore := func() {}
	if f, ok := s.in.(fdReader); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		var once sync.Once
		restore = func() {
			once.Do(func() {
				if err := term.Restore(fd, state); err != nil {
					s.logger.Warn("failed to restore terminal", "err", err)
				}
			})
		}
	}

	out := make(chan domain.InputEvent, 16)
	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		restore()
	}()

	go func() {
		defer close(out)
		defer close(stop)

		buf := make([]byte, 64)
		for {
			n, err := s.in.Read(buf)
			for _, ev := range Decode(buf[:n]) {
				if ev.CtrlKey && ev.Code == "KeyC" {
					return
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					s.logger.Warn("terminal read failed", "err", err)
				}
				return
			}
		}
	}()
	return out, nil
}
