package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point of the pacing dashboard. Without a subcommand it
// serves the dashboard; see newRootCmd for the rest.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
