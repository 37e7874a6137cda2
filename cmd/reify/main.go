// File: cmd/reify/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/reify-cli/cmd"
	"github.com/xkilldash9x/reify-cli/internal/observability"
)

// main wires OS signals into the command context so long-running commands
// (serve, deploy) shut down gracefully on SIGINT and SIGTERM.
func main() {
	defer observability.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			// Graceful shutdown is a clean exit.
			os.Exit(0)
		}
		os.Exit(1)
	}
}
