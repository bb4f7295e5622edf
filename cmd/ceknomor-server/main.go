package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/di"
	"github.com/mikey/ceknomor/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	frontend ports.Frontend,
	scans *core.ScanService,
	slot ports.SlotStore,
) error {
	defer logger.Sync()
	defer slot.Stop()

	// Load the history before serving so a broken slot shows up at startup
	logger.Info("History ready", zap.Int("entries", len(scans.History(context.Background()))))

	if err := frontend.Start(); err != nil {
		logger.Error("Failed to start frontend", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// The console frontend also ends when its input does
	var done <-chan struct{}
	if d, ok := frontend.(interface{ Done() <-chan struct{} }); ok {
		done = d.Done()
	}

	select {
	case <-sigCh:
	case <-done:
	}
	logger.Info("Shutting down...")

	if err := frontend.Stop(); err != nil {
		logger.Error("Failed to stop frontend", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}
