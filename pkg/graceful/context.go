package graceful

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Context creates a context that is canceled when an OS interrupt signal is
// received, so an in-flight fetch or upload stops cleanly on CTRL+C.
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received termination signal, canceling the run...")
		cancel()
	}()

	return ctx, cancel
}
