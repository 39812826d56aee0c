package backend

import (
	"context"

	"ledger/internal/journal"
)

// SinkType names one journal destination
type SinkType string

const (
	SQLiteSink SinkType = "sqlite"
	AMQPSink   SinkType = "amqp"
)

// String implements fmt.Stringer
func (st SinkType) String() string {
	return string(st)
}

// IsValid returns true if the sink type is known
func (st SinkType) IsValid() bool {
	switch st {
	case SQLiteSink, AMQPSink:
		return true
	default:
		return false
	}
}

// Factory builds the journal recorder described by a Config
type Factory interface {
	CreateJournal(ctx context.Context, config Config) (journal.Recorder, error)
}

// Config holds configuration for journal creation
type Config struct {
	Sinks []SinkType

	// SQLite specific
	SQLiteDBPath string

	// AMQP specific
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}
