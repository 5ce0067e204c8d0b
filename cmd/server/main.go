package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qrmenu-analytics/internal/app"
	"qrmenu-analytics/internal/shared/configs"
)

const (
	defaultConfigPath = "./configs/configs.yml"
	configPathEnv     = "QRMENU_CONFIG_PATH"

	// covers the server drain plus the consumer's final flush into the event store
	shutdownTimeout = 20 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "qrmenu-analytics: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := defaultConfigPath
	if p := os.Getenv(configPathEnv); p != "" {
		configPath = p
	}

	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Start()
	}()

	var runErr error
	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	// the consumer is running either way and must flush what was accepted
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("forced shutdown: %w", err))
	}
	return runErr
}
