package backend

import (
	"fmt"

	"ledger/internal/config"
)

// FromAppConfig converts the application config to journal config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	var sinks []SinkType
	switch appConfig.Journal {
	case config.JournalNone:
	case config.JournalSQLite:
		sinks = []SinkType{SQLiteSink}
	case config.JournalAMQP:
		sinks = []SinkType{AMQPSink}
	case config.JournalAll:
		sinks = []SinkType{SQLiteSink, AMQPSink}
	default:
		return Config{}, fmt.Errorf("invalid journal in config: %s", appConfig.Journal)
	}

	return Config{
		Sinks:        sinks,
		SQLiteDBPath: appConfig.JournalDBPath,
		AMQPURL:      appConfig.AMQPURL,
		AMQPExchange: appConfig.AMQPExchange,
		AMQPQueue:    appConfig.AMQPQueue,
	}, nil
}

// Validate validates the journal configuration
func (c Config) Validate() error {
	for _, s := range c.Sinks {
		if !s.IsValid() {
			return fmt.Errorf("invalid journal sink: %s", s)
		}
		switch s {
		case SQLiteSink:
			if c.SQLiteDBPath == "" {
				return fmt.Errorf("SQLite database path is required for sqlite journal")
			}
		case AMQPSink:
			if c.AMQPURL == "" {
				return fmt.Errorf("AMQP URL is required for amqp journal")
			}
			if c.AMQPExchange == "" || c.AMQPQueue == "" {
				return fmt.Errorf("AMQP exchange and queue are required for amqp journal")
			}
		}
	}
	return nil
}
