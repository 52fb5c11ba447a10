package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck/internal/cli"
	"github.com/aretw0/hotdeck/internal/presentation/tui"
)

// flagKeys maps command flags onto configuration keys so flags override file and env.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"backend":     "storage.backend",
	"addr":        "http.addr",
	"mqtt-broker": "mqtt.broker",
	"mqtt-topic":  "mqtt.topic_prefix",
}

// app carries the configuration resolved before any subcommand runs.
type app struct {
	cfg    *cli.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hotdeck",
		Short: "hotdeck binds MIDI and keyboard triggers to production actions",
		Long: `hotdeck manages hotkeys laid out on decks of buttons. Each hotkey runs an
ordered list of actions (scene switches, source toggles, audio changes, deck
navigation) when one of its MIDI or keyboard triggers fires.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			v := cli.NewViper(path)
			for name, key := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			cfg, err := cli.LoadConfig(v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cli.NewLogger(cfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.PrintBanner(cmd.OutOrStdout())
			return cmd.Help()
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Config file (default ./hotdeck.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().String("backend", "", "Storage backend: memory, file, redis or sqlite")

	root.AddCommand(
		newVersionCmd(),
		newServeCmd(a),
		newMCPCmd(a),
		newHotkeyCmd(a),
		newDeckCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newLearnCmd(a),
		newStatsCmd(a),
	)
	return root
}

// withSession opens the configured engine for the duration of fn.
func (a *app) withSession(cmd *cobra.Command, fn func(ctx context.Context, s *cli.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := cli.NewSession(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			a.logger.Warn("failed to close session", "err", cerr)
		}
	}()
	return fn(ctx, s)
}
