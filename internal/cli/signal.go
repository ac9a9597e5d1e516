package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// signalContext cancels on SIGINT or SIGTERM so a headless run stops cleanly.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
