package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck/internal/adapters/terminal"
	"github.com/aretw0/hotdeck/internal/cli"
	"github.com/aretw0/hotdeck/internal/runtime"
	"github.com/aretw0/hotdeck/pkg/domain"
)

// settleGrace is added to the chord debounce when input ends before the
// learned trigger is reported.
const settleGrace = 200 * time.Millisecond

func newLearnCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Capture a key chord from the terminal and print its trigger",
		Long: `Puts the engine in learning mode and reads raw key presses from the terminal.
The chord is finalized once no key arrives for the learning debounce. With
--hotkey the captured trigger is bound to that hotkey.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hotkeyID, _ := cmd.Flags().GetString("hotkey")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				return a.learn(ctx, cmd, s, hotkeyID, timeout)
			})
		},
	}
	cmd.Flags().String("hotkey", "", "Hotkey to bind the captured trigger to")
	cmd.Flags().Duration("timeout", 0, "Give up after this long (0 waits forever)")
	return cmd
}

func (a *app) learn(ctx context.Context, cmd *cobra.Command, s *cli.Session, hotkeyID string, timeout time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	stopped := make(chan domain.LearningStopped, 1)
	unsubscribe := s.Engine.Subscribe(func(ev domain.Event) {
		if e, ok := ev.(domain.LearningStopped); ok {
			select {
			case stopped <- e:
			default:
			}
		}
	}, domain.EventLearningStopped)
	defer unsubscribe()

	var err error
	if hotkeyID != "" {
		err = s.Engine.LearnTrigger(ctx, hotkeyID)
	} else {
		err = s.Engine.StartLearning("", func(domain.Trigger) {})
	}
	if err != nil {
		return err
	}
	defer func() {
		if s.Engine.IsLearning() {
			s.Engine.StopLearning()
		}
	}()

	out := cmd.OutOrStdout()
	cli.PrintSystemMessage(cmd.ErrOrStderr(), "Press a key chord (Ctrl+C to cancel)...")

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.Engine.Listen(ctx, terminal.New(cmd.InOrStdin(), a.logger))
	}()

	report := func(e domain.LearningStopped) error {
		if e.Trigger == nil {
			return errors.New("learning cancelled")
		}
		fmt.Fprintf(out, "%s\n", e.Trigger.Description())
		if hotkeyID != "" {
			cli.PrintSystemMessage(cmd.ErrOrStderr(), "Bound %s trigger to %s.", e.Trigger.Kind, hotkeyID)
		}
		return nil
	}

	select {
	case e := <-stopped:
		return report(e)
	case <-ctx.Done():
		return fmt.Errorf("no trigger captured: %w", ctx.Err())
	case err := <-listenErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	// Input ended; a pending chord is still finalized by the debounce timer.
	debounce := a.cfg.Learning.Debounce
	if debounce <= 0 {
		debounce = runtime.DefaultLearningDebounce
	}
	select {
	case e := <-stopped:
		return report(e)
	case <-time.After(debounce + settleGrace):
		return errors.New("no trigger captured")
	}
}
