package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck/internal/cli"
	"github.com/aretw0/hotdeck/internal/presentation/graph"
	"github.com/aretw0/hotdeck/internal/presentation/tui"
	"github.com/aretw0/hotdeck/pkg/domain"
)

func newDeckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deck",
		Aliases: []string{"decks"},
		Short:   "Manage decks and navigate between them",
	}
	cmd.AddCommand(
		newDeckListCmd(a),
		newDeckCreateCmd(a),
		newDeckDeleteCmd(a),
		newDeckGridCmd(a),
		newDeckSwitchCmd(a),
		newDeckMainCmd(a),
		newDeckGraphCmd(a),
	)
	return cmd
}

func newDeckListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List main decks with their sub-decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				if asJSON {
					return printJSON(cmd.OutOrStdout(), s.Engine.Decks())
				}
				current := ""
				if d, ok := s.Engine.CurrentDeck(); ok {
					current = d.ID
				}
				md := tui.DecksMarkdown(s.Engine.MainDecks(), s.Engine.SubDecks, current, s.Engine.ActiveSubDecks())
				return cli.Markdown(cmd.OutOrStdout(), md)
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON")
	return cmd
}

func newDeckCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a main deck, or a sub-deck with --parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts domain.DeckOptions
			opts.Name, _ = cmd.Flags().GetString("name")
			opts.Description, _ = cmd.Flags().GetString("description")
			opts.Rows, _ = cmd.Flags().GetInt("rows")
			opts.Columns, _ = cmd.Flags().GetInt("cols")
			opts.ParentDeckID, _ = cmd.Flags().GetString("parent")

			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				d, err := s.Engine.CreateDeck(ctx, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.ID)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "Deck name")
	cmd.Flags().String("description", "", "Deck description")
	cmd.Flags().Int("rows", 0, "Grid rows (default 4; sub-decks mirror the parent)")
	cmd.Flags().Int("cols", 0, "Grid columns (default 4; sub-decks mirror the parent)")
	cmd.Flags().String("parent", "", "Main deck this sub-deck belongs to")
	return cmd
}

func newDeckDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a deck; sub-decks go with it and their hotkeys become standalone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				if !s.Engine.DeleteDeck(ctx, args[0]) {
					return fmt.Errorf("%w: %s", domain.ErrDeckNotFound, args[0])
				}
				cli.PrintSystemMessage(cmd.OutOrStdout(), "Deleted %s.", args[0])
				return nil
			})
		},
	}
}

func newDeckGridCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid [main-deck-id]",
		Short: "Show the grid of a main deck (default: the current deck)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				mainID, err := resolveMainDeck(s, args)
				if err != nil {
					return err
				}
				g, ok := s.Engine.Grid(mainID)
				if !ok {
					return fmt.Errorf("%w: %s", domain.ErrDeckNotFound, mainID)
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), g)
				}
				return cli.Markdown(cmd.OutOrStdout(), tui.GridMarkdown(g))
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON")
	return cmd
}

// resolveMainDeck returns the explicit id, or the main deck behind the current
// deck. The current deck lives only for one command, so a fresh session falls
// back to the single main deck with an active sub-deck, then to the single
// main deck.
func resolveMainDeck(s *cli.Session, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if d, ok := s.Engine.CurrentDeck(); ok {
		if d.IsSubDeck() {
			return d.ParentDeckID, nil
		}
		return d.ID, nil
	}
	if active := s.Engine.ActiveSubDecks(); len(active) == 1 {
		for mainID := range active {
			return mainID, nil
		}
	}
	if mains := s.Engine.MainDecks(); len(mains) == 1 {
		return mains[0].ID, nil
	}
	return "", errors.New("no current deck; pass a deck id")
}

func newDeckSwitchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Make a deck current; a sub-deck is also activated on its parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				if !s.Engine.SwitchToDeck(ctx, args[0]) {
					return fmt.Errorf("%w: %s", domain.ErrDeckNotFound, args[0])
				}
				d, _ := s.Engine.CurrentDeck()
				cli.PrintSystemMessage(cmd.OutOrStdout(), "Current deck: %s", d.Name)
				return nil
			})
		},
	}
}

func newDeckMainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "main [main-deck-id]",
		Short: "Deactivate the sub-deck shown on a main deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				mainID, err := resolveMainDeck(s, args)
				if err != nil {
					return err
				}
				if !s.Engine.SwitchBackToMainDeck(ctx, mainID) {
					return fmt.Errorf("%w: %s", domain.ErrDeckNotFound, mainID)
				}
				cli.PrintSystemMessage(cmd.OutOrStdout(), "Showing main deck %s.", mainID)
				return nil
			})
		},
	}
}

func newDeckGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Export the deck hierarchy as a Mermaid diagram",
		Long:  `Outputs a Mermaid diagram (graph TD) of decks, sub-decks, placed hotkeys and the deck switches they perform.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				overlay := &graph.Overlay{ActiveSubDecks: s.Engine.ActiveSubDecks()}
				if d, ok := s.Engine.CurrentDeck(); ok {
					overlay.CurrentDeck = d.ID
				}
				fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(s.Engine.Decks(), s.Engine.Hotkeys(), overlay))
				return nil
			})
		},
	}
}
