package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"ledger/internal/amqp"
	"ledger/internal/cli"
	"ledger/internal/journal"
	applog "ledger/internal/log"
	"ledger/internal/storage"
	"ledger/internal/worker"
)

func main() {
	recent := flag.Int("recent", 0, "print the last N entries of the SQLite journal and exit")
	attempts := flag.Int("attempts", 5, "AMQP connection attempts")
	mirror := flag.Bool("mirror", false, "append consumed events to the SQLite journal")
	flag.Parse()

	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("info"))
	logger := cli.SetupLogger(cfg.LogLevel)

	if *recent > 0 {
		if err := printRecent(context.Background(), cfg.JournalDBPath, *recent); err != nil {
			logger.Error("Failed to read journal", applog.FieldError, err, "path", cfg.JournalDBPath)
			os.Exit(1)
		}
		return
	}

	ctx := applog.NewContext(cli.GracefulShutdown(logger, 10*time.Second, nil), logger)

	client, err := amqp.NewClientWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, *attempts)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	var sink journal.Recorder = journal.Nop{}
	if *mirror {
		repo, err := storage.NewSQLiteJournal(cfg.JournalDBPath)
		if err != nil {
			logger.Error("Failed to open journal mirror", applog.FieldError, err, "path", cfg.JournalDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		sink = repo
	}

	w := worker.NewEventWorker(sink, logger)
	err = client.ConsumeEvents(ctx, w.Handler(ctx))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", applog.FieldError, err)
		os.Exit(1)
	}
	handled, failed := w.Stats()
	logger.Info("Event consumer stopped", "handled", handled, "failed", failed)
}

func printRecent(ctx context.Context, dbPath string, limit int) error {
	repo, err := storage.OpenExistingJournal(dbPath)
	if errors.Is(err, storage.ErrNoJournal) {
		fmt.Println("no journal")
		return nil
	}
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.Recent(ctx, limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Println(formatEntry(e))
	}
	return nil
}

func formatEntry(e journal.Entry) string {
	status := "ok"
	if !e.Success {
		status = e.ErrorKind + ": " + e.Error
	}
	return fmt.Sprintf("%s  %-40s  %s", e.At.Format(time.RFC3339), e.Line, status)
}
