// Package cli provides process wiring and the interactive loop.
// It consolidates initialization shared by cmd/ledger and cmd/ledger-events.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"

	"ledger/internal/backend"
	"ledger/internal/commands"
	"ledger/internal/config"
	"ledger/internal/journal"
	"ledger/internal/ledger"
	applog "ledger/internal/log"
	"ledger/internal/seed"
)

// SetupLogger initializes structured logging at the given level on stderr.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	if lvl, err := applog.ParseLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenJournal builds the journal recorder selected by cfg.
// Returns the recorder or exits the process on failure.
func OpenJournal(ctx context.Context, logger *applog.Logger, cfg *config.Config) journal.Recorder {
	jcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid journal configuration", applog.FieldError, err)
		os.Exit(1)
	}
	rec, err := backend.NewFactory(logger).CreateJournal(ctx, jcfg)
	if err != nil {
		logger.Error("Failed to open journal", applog.FieldError, err, "journal", cfg.Journal)
		os.Exit(1)
	}
	return rec
}

// TodayFunc returns the day used by add: the configured override, or the
// day of the month from the system clock.
func TodayFunc(cfg *config.Config) func() int {
	if cfg.Today != 0 {
		day := cfg.Today
		return func() int { return day }
	}
	return func() int { return time.Now().Day() }
}

// NewDispatcher seeds a fresh store and wires it to a dispatcher.
func NewDispatcher(cfg *config.Config, rec journal.Recorder, logger *applog.Logger) *commands.Dispatcher {
	initial := seed.Random(cfg.SeedCount, gofakeit.New(0))
	store := ledger.New(initial, cfg.HistoryLimit, logger)
	logger.Debug("Ledger seeded", applog.FieldSize, store.Len())
	return commands.NewDispatcher(store, commands.Parser{Today: TodayFunc(cfg)}, rec, logger)
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM. The
// cleanup function runs once the signal arrives, bounded by timeout.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		done := make(chan struct{})
		go func() {
			if cleanup != nil {
				cleanup()
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(timeout):
			logger.Warn("Shutdown timeout reached")
		}
		cancel()
	}()

	return ctx
}
