package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	httpserver "session-signup/infrastructure/http"
	"session-signup/internal"
	"session-signup/repositories"
	"session-signup/runtime/workers"
	"session-signup/services"
	"session-signup/sink"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database close, worker
// shutdown) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	// A local .env is a development convenience; in production the
	// environment is expected to be set by the service manager.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := internal.LoggerFromLevel(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Sheet store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	sheetRepository := repositories.NewSheetRepository(db, logger, config.UpdateRetries)
	signupService := services.NewSignupService(logger, sheetRepository, sink.NewLogSink(logger))

	// 3. Background workers
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(workers.NewBadgerGCWorker(db, logger, config.GCInterval))

	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		supervisor.Run(ctx)
	}()

	// 4. HTTP transport
	app := httpserver.NewServer(logger, signupService)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Signup server listening", "address", address)
		serverErr <- app.Listen(address)
	}()

	select {
	case err := <-serverErr:
		supervisor.Stop()
		<-supervisorDone
		return exitRuntime, fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	if err := app.ShutdownWithTimeout(config.ShutdownTimeout); err != nil {
		logger.Error("HTTP shutdown failed", "err", err)
	}

	supervisor.Stop()
	<-supervisorDone

	return exitOK, nil
}
