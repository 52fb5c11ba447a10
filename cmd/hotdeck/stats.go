package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck/internal/cli"
	"github.com/aretw0/hotdeck/internal/presentation/tui"
	"github.com/aretw0/hotdeck/pkg/domain"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show engine statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			limit, _ := cmd.Flags().GetInt("history")
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				stats := s.Engine.Stats()
				if asJSON {
					return printJSON(cmd.OutOrStdout(), struct {
						domain.Stats
						History []domain.ExecutionRecord `json:"history,omitempty"`
					}{Stats: stats, History: lastN(s.Engine.History(), limit)})
				}
				md := tui.StatsMarkdown(stats)
				if limit > 0 {
					md += "\n" + tui.HistoryMarkdown(s.Engine.History(), limit)
				}
				return cli.Markdown(cmd.OutOrStdout(), md)
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON")
	cmd.Flags().Int("history", 0, "Also show the last N executions")
	return cmd
}

func lastN(records []domain.ExecutionRecord, n int) []domain.ExecutionRecord {
	if n <= 0 {
		return nil
	}
	if len(records) > n {
		return records[len(records)-n:]
	}
	return records
}
