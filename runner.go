package hotdeck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// Runner pumps one or more trigger sources into an engine and reports what
// happened on Output. This keeps frontends (CLI, daemon, tests) free of the
// fan-in plumbing.
type Runner struct {
	Sources []ports.TriggerSource
	Output  io.Writer
	// Renderer formats an event for Output. Returning "" skips the event.
	Renderer EventRenderer
}

// EventRenderer turns an event into a line of output.
type EventRenderer func(domain.Event) string

// NewRunner creates a Runner reading from the given sources.
func NewRunner(sources ...ports.TriggerSource) *Runner {
	return &Runner{Sources: sources, Renderer: DefaultRenderer}
}

// Run listens to every source until ctx is done or all sources have closed.
// It returns the first source failure; cancellation is not an error.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if len(r.Sources) == 0 {
		return fmt.Errorf("at least one trigger source is required")
	}

	if r.Output != nil && r.Renderer != nil {
		var mu sync.Mutex
		unsubscribe := engine.Subscribe(func(ev domain.Event) {
			line := r.Renderer(ev)
			if line == "" {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(r.Output, line)
		})
		defer unsubscribe()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(r.Sources))
	var wg sync.WaitGroup
	for _, src := range r.Sources {
		wg.Add(1)
		go func(src ports.TriggerSource) {
			defer wg.Done()
			err := engine.Listen(ctx, src)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				errs <- err
				cancel()
			}
		}(src)
	}
	wg.Wait()
	close(errs)
	return <-errs
}

// DefaultRenderer prints executions, learned triggers and deck switches.
func DefaultRenderer(ev domain.Event) string {
	switch e := ev.(type) {
	case domain.HotkeyExecuted:
		if e.Success {
			return fmt.Sprintf("✔ %s", e.Hotkey.Name)
		}
		return fmt.Sprintf("✘ %s: %s", e.Hotkey.Name, e.Error)
	case domain.LearningStopped:
		if e.Trigger != nil {
			return fmt.Sprintf("learned %s trigger: %s", e.Trigger.Kind, e.Trigger.Description())
		}
	case domain.DeckSwitched:
		if !e.AlreadyActive {
			return fmt.Sprintf("deck: %s", e.Deck.Name)
		}
	}
	return ""
}
