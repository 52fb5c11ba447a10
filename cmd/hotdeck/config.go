package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck/internal/cli"
	"github.com/aretw0/hotdeck/pkg/configfile"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export hotkeys, decks and active sub-decks",
		Long:  `Writes the configuration to file (format from its extension) or to stdout.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				cfg := s.Engine.Export()
				if len(args) == 1 && !cmd.Flags().Changed("format") {
					if err := configfile.Save(args[0], cfg); err != nil {
						return err
					}
					cli.PrintSystemMessage(cmd.ErrOrStderr(), "Exported %d hotkeys and %d decks to %s.", len(cfg.Hotkeys), len(cfg.Decks), args[0])
					return nil
				}

				format, err := configfile.ParseFormat(formatName)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(args) == 1 {
					f, err := os.Create(args[0])
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				return configfile.Encode(w, cfg, format)
			})
		},
	}
	cmd.Flags().String("format", "json", "Output format: json or yaml")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all hotkeys and decks with an exported configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configfile.Load(args[0])
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				if err := s.Engine.Import(ctx, cfg); err != nil {
					return err
				}
				cli.PrintSystemMessage(cmd.OutOrStdout(), "Imported %d hotkeys and %d decks.", len(cfg.Hotkeys), len(cfg.Decks))
				return nil
			})
		},
	}
}
