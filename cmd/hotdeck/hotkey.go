package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck/internal/cli"
	"github.com/aretw0/hotdeck/internal/presentation/tui"
	"github.com/aretw0/hotdeck/pkg/domain"
)

func newHotkeyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hotkey",
		Aliases: []string{"hotkeys", "hk"},
		Short:   "Manage hotkeys",
	}
	cmd.AddCommand(
		newHotkeyListCmd(a),
		newHotkeyCreateCmd(a),
		newHotkeyDeleteCmd(a),
		newHotkeyExecCmd(a),
		newHotkeyBindCmd(a),
	)
	return cmd
}

func newHotkeyListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hotkeys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, _ := cmd.Flags().GetString("deck")
			standalone, _ := cmd.Flags().GetBool("standalone")
			asJSON, _ := cmd.Flags().GetBool("json")

			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				var hotkeys []*domain.Hotkey
				switch {
				case standalone:
					hotkeys = s.Engine.StandaloneHotkeys()
				case deckID != "":
					hotkeys = s.Engine.HotkeysByDeck(deckID)
				default:
					hotkeys = s.Engine.Hotkeys()
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), hotkeys)
				}
				return cli.Markdown(cmd.OutOrStdout(), tui.HotkeysMarkdown(hotkeys))
			})
		},
	}
	cmd.Flags().String("deck", "", "Only hotkeys placed on this deck")
	cmd.Flags().Bool("standalone", false, "Only hotkeys not placed on any deck")
	cmd.Flags().Bool("json", false, "Print JSON")
	return cmd
}

func newHotkeyCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hotkey",
		Example: `  hotdeck hotkey create --name Intro --deck deck_1 --row 0 --col 0 \
    --action 'scene_switch={"sceneName":"Intro"}' --midi cc:1:7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := hotkeyOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				h := s.Engine.CreateHotkey(ctx, opts)
				if opts.DeckID != "" && h.IsStandalone() {
					cli.PrintSystemMessage(cmd.ErrOrStderr(), "Placement rejected; hotkey is standalone.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), h.ID)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "Hotkey name")
	cmd.Flags().String("description", "", "Hotkey description")
	cmd.Flags().String("deck", "", "Deck to place the hotkey on")
	cmd.Flags().Int("row", 0, "Grid row (with --deck)")
	cmd.Flags().Int("col", 0, "Grid column (with --deck)")
	cmd.Flags().Bool("disabled", false, "Create the hotkey disabled")
	cmd.Flags().StringArray("action", nil, `Action as type or type={json data}; repeatable, runs in order`)
	cmd.Flags().String("midi", "", "MIDI trigger as type:channel:number, e.g. cc:1:7")
	return cmd
}

func hotkeyOptionsFromFlags(cmd *cobra.Command) (domain.HotkeyOptions, error) {
	var opts domain.HotkeyOptions
	opts.Name, _ = cmd.Flags().GetString("name")
	opts.Description, _ = cmd.Flags().GetString("description")

	if disabled, _ := cmd.Flags().GetBool("disabled"); disabled {
		enabled := false
		opts.Enabled = &enabled
	}

	if deckID, _ := cmd.Flags().GetString("deck"); deckID != "" {
		row, _ := cmd.Flags().GetInt("row")
		col, _ := cmd.Flags().GetInt("col")
		opts.DeckID = deckID
		opts.Position = &domain.Position{Row: row, Col: col}
	}

	specs, _ := cmd.Flags().GetStringArray("action")
	for _, spec := range specs {
		action, err := parseAction(spec)
		if err != nil {
			return opts, err
		}
		opts.Actions = append(opts.Actions, action)
	}

	if spec, _ := cmd.Flags().GetString("midi"); spec != "" {
		m, err := parseMIDI(spec)
		if err != nil {
			return opts, err
		}
		opts.Triggers = append(opts.Triggers, domain.NewMIDITrigger(m))
	}
	return opts, nil
}

func newHotkeyDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hotkey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				if !s.Engine.DeleteHotkey(ctx, args[0]) {
					return fmt.Errorf("%w: %s", domain.ErrHotkeyNotFound, args[0])
				}
				cli.PrintSystemMessage(cmd.OutOrStdout(), "Deleted %s.", args[0])
				return nil
			})
		},
	}
}

func newHotkeyExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <id>",
		Short: "Execute a hotkey's actions now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				h, ok := s.Engine.Hotkey(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", domain.ErrHotkeyNotFound, args[0])
				}
				if s.Engine.Execute(ctx, h.ID) {
					fmt.Fprintf(cmd.OutOrStdout(), "✔ %s\n", h.Name)
					return nil
				}
				reason := "hotkey is disabled"
				if history := s.Engine.History(); len(history) > 0 && history[len(history)-1].HotkeyID == h.ID {
					reason = history[len(history)-1].Error
				}
				return fmt.Errorf("✘ %s: %s", h.Name, reason)
			})
		},
	}
}

func newHotkeyBindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind <id>",
		Short: "Bind the next key chord typed in the terminal to a hotkey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				return a.learn(ctx, cmd, s, args[0], timeout)
			})
		},
	}
	cmd.Flags().Duration("timeout", 0, "Give up after this long (0 waits forever)")
	return cmd
}
