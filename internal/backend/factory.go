package backend

import (
	"context"
	"fmt"

	"ledger/internal/amqp"
	"ledger/internal/journal"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new journal factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentJournal),
	}
}

// CreateJournal implements Factory.CreateJournal. An unreachable broker is
// not fatal: the AMQP sink is skipped with a warning.
func (f *DefaultFactory) CreateJournal(ctx context.Context, config Config) (journal.Recorder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var sinks journal.Multi
	for _, s := range config.Sinks {
		switch s {
		case SQLiteSink:
			repo, err := storage.NewSQLiteJournal(config.SQLiteDBPath)
			if err != nil {
				sinks.Close()
				return nil, fmt.Errorf("failed to initialize SQLite journal: %w", err)
			}
			f.logger.InfoContext(ctx, "Initialized SQLite journal", "db_path", config.SQLiteDBPath)
			sinks = append(sinks, repo)

		case AMQPSink:
			client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
			if err != nil {
				f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without event publishing", "error", err)
				continue
			}
			f.logger.InfoContext(ctx, "Initialized AMQP journal",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			sinks = append(sinks, client)
		}
	}

	switch len(sinks) {
	case 0:
		return journal.Nop{}, nil
	case 1:
		return sinks[0], nil
	default:
		return sinks, nil
	}
}
