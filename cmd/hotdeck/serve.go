package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/hotdeck"
	"github.com/aretw0/hotdeck/internal/cli"
	httpadapter "github.com/aretw0/hotdeck/pkg/adapters/http"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and event stream",
		Long: `Starts the engine as a daemon exposing the JSON API, the /events SSE stream
and Prometheus /metrics. When an MQTT broker is configured, MIDI and keyboard
input published under the topic prefix drives the engine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				return a.serve(ctx, cmd, s)
			})
		},
	}
	cmd.Flags().String("addr", "", "Address to listen on (default :8080)")
	cmd.Flags().String("mqtt-broker", "", "MQTT broker URL, e.g. tcp://localhost:1883")
	cmd.Flags().String("mqtt-topic", "", "MQTT topic prefix for input (default hotdeck/input)")
	return cmd
}

func (a *app) serve(ctx context.Context, cmd *cobra.Command, s *cli.Session) error {
	out := cmd.OutOrStdout()

	handler := httpadapter.NewHandler(httpadapter.Options{
		Engine:  s.Engine,
		Events:  s.Engine.Bus(),
		Metrics: s.Registry,
		Logger:  a.logger,
		Version: hotdeck.Version,
	})
	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		cli.PrintSystemMessage(out, "Serving hotdeck on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	if src := cli.NewMQTTSource(a.cfg.MQTT, a.logger); src != nil {
		runner := hotdeck.NewRunner(src)
		runner.Output = out
		go func() {
			cli.PrintSystemMessage(out, "Listening on MQTT %s", src.Topic())
			if err := runner.Run(ctx, s.Engine); err != nil {
				a.logger.Error("mqtt input stopped", "err", err)
			}
		}()
	}

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		cli.PrintSystemMessage(out, "Shutting down...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			return srv.Close()
		}
		return nil
	}
}
