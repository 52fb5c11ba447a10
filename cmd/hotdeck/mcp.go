package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck"
	"github.com/aretw0/hotdeck/internal/cli"
	hotdeckmcp "github.com/aretw0/hotdeck/pkg/adapters/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server over stdio",
		Long: `Starts the engine as an MCP server on standard input/output so AI agents can
list, create and execute hotkeys and navigate decks as tools. Logs go to stderr
to keep the JSON-RPC stream clean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				a.logger.Info("starting MCP server (stdio)")
				return hotdeckmcp.NewServer(s.Engine, hotdeck.Version, a.logger).ServeStdio()
			})
		},
	}
}
