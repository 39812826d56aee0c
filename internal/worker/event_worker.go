package worker

import (
	"context"
	"fmt"
	"sync/atomic"

	"ledger/internal/amqp"
	"ledger/internal/journal"
	applog "ledger/internal/log"
)

// EventWorker handles ledger events consumed from AMQP. Each event is logged
// and, when a mirror is configured, appended to it.
type EventWorker struct {
	mirror journal.Recorder
	logger *applog.Logger

	handled atomic.Int64
	failed  atomic.Int64
}

// NewEventWorker returns a worker writing to mirror. A nil mirror only logs.
func NewEventWorker(mirror journal.Recorder, logger *applog.Logger) *EventWorker {
	if mirror == nil {
		mirror = journal.Nop{}
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &EventWorker{mirror: mirror, logger: logger.WithComponent(applog.ComponentAMQP)}
}

// HandleEvent processes a single event message.
func (w *EventWorker) HandleEvent(ctx context.Context, msg *amqp.EventMessage) error {
	if msg == nil {
		return fmt.Errorf("nil event message")
	}
	e := msg.Entry

	fields := applog.NewFields().
		WithCommand(e.Verb, e.Line).
		WithState(e.Size, e.History).
		WithErrorType(e.ErrorKind)
	fields[applog.FieldSuccess] = e.Success
	if e.Error != "" {
		fields[applog.FieldError] = e.Error
	}
	w.logger.InfoContext(ctx, "Ledger event", fields.ToSlice()...)

	if err := w.mirror.Record(ctx, e); err != nil {
		w.failed.Add(1)
		w.logger.ErrorContext(ctx, "Failed to mirror event",
			applog.FieldCommand, e.Line,
			applog.FieldError, err)
		return fmt.Errorf("mirror event: %w", err)
	}
	w.handled.Add(1)
	return nil
}

// Handler adapts HandleEvent to the consumer callback signature.
func (w *EventWorker) Handler(ctx context.Context) func(*amqp.EventMessage) error {
	return func(msg *amqp.EventMessage) error {
		return w.HandleEvent(ctx, msg)
	}
}

// Stats returns the number of mirrored and failed events so far.
func (w *EventWorker) Stats() (handled, failed int64) {
	return w.handled.Load(), w.failed.Load()
}
