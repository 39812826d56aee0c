package main

import (
	"context"
	"flag"
	"os"
	"time"

	"ledger/internal/cli"
	applog "ledger/internal/log"
)

func main() {
	quiet := flag.Bool("quiet", false, "do not print the menu before every prompt")
	flag.Parse()

	cli.LoadEnvFile()

	// The log level comes from configuration, so validate with a default logger first
	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("warn"))
	logger := cli.SetupLogger(cfg.LogLevel)

	rec := cli.OpenJournal(context.Background(), logger, cfg)
	defer func() {
		if err := rec.Close(); err != nil {
			logger.Error("Failed to close journal", applog.FieldError, err)
		}
	}()

	ctx := applog.NewContext(cli.GracefulShutdown(logger, 5*time.Second, nil), logger)

	d := cli.NewDispatcher(cfg, rec, logger)
	logger.Info("Ledger ready",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldSize, d.Store().Len(),
		"journal", cfg.Journal)

	repl := cli.NewREPL(d, os.Stdin, os.Stdout, logger, *quiet)
	if err := repl.Run(ctx); err != nil {
		logger.Error("Input loop failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Ledger stopped", applog.FieldOperation, applog.OpShutdown)
}
