// Command hotdeck manages hotkeys and decks and serves them over HTTP, MCP and MQTT.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/hotdeck/internal/cli"
)

func main() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
