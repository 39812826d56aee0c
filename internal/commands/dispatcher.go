package commands

import (
	"context"
	"time"

	"ledger/internal/core"
	"ledger/internal/journal"
	"ledger/internal/ledger"
	"ledger/internal/log"
)

// Dispatcher parses command lines and runs them against one store, one at a
// time. Each outcome is logged and handed to the journal.
type Dispatcher struct {
	store   *ledger.Store
	parser  Parser
	journal journal.Recorder
	logger  *log.Logger
	now     func() time.Time
}

// NewDispatcher returns a dispatcher over store. A nil rec discards journal
// entries. With a nil logger each call logs through the logger carried by its
// context.
func NewDispatcher(store *ledger.Store, parser Parser, rec journal.Recorder, logger *log.Logger) *Dispatcher {
	if rec == nil {
		rec = journal.Nop{}
	}
	if logger != nil {
		logger = logger.WithComponent(log.ComponentCommands)
	}
	return &Dispatcher{
		store:   store,
		parser:  parser,
		journal: rec,
		logger:  logger,
		now:     time.Now,
	}
}

// Dispatch parses and executes line. A failing command leaves the store
// unchanged; its error is returned for the caller to report.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (Result, error) {
	logger := d.loggerFor(ctx)
	start := d.now()
	verb, _ := SplitText(line)

	op := log.OpParse
	cmd, err := d.parser.Parse(line)
	var res Result
	if err == nil {
		op = operation(cmd)
		res, err = cmd.Execute(d.store)
	}

	fields := log.NewFields().
		WithCommand(verb, line).
		WithOperation(op).
		WithState(d.store.Len(), d.store.HistoryLen())
	fields[log.FieldSuccess] = err == nil
	fields[log.FieldDuration] = d.now().Sub(start).Milliseconds()
	if err != nil {
		fields.WithError(err).WithErrorType(core.KindOf(err))
		logger.InfoContext(ctx, "Command rejected", fields.ToSlice()...)
	} else {
		logger.DebugContext(ctx, "Command executed", fields.ToSlice()...)
	}

	d.record(ctx, logger, verb, line, err)
	return res, err
}

func (d *Dispatcher) loggerFor(ctx context.Context) *log.Logger {
	if d.logger != nil {
		return d.logger
	}
	return log.FromContext(ctx).WithComponent(log.ComponentCommands)
}

// operation names what cmd does for log fields.
func operation(cmd Command) string {
	switch cmd.(type) {
	case AddCommand:
		return log.OpAdd
	case InsertCommand:
		return log.OpInsert
	case RemoveDayCommand, RemoveRangeCommand, RemoveTypeCommand:
		return log.OpRemove
	case ReplaceCommand:
		return log.OpReplace
	case FilterTypeCommand, FilterTypeAmountCommand:
		return log.OpFilter
	case UndoCommand:
		return log.OpUndo
	case BalanceCommand:
		return log.OpBalance
	case ListAllCommand, ListTypeCommand, ListAmountCommand:
		return log.OpList
	default:
		return cmd.Name()
	}
}

func (d *Dispatcher) record(ctx context.Context, logger *log.Logger, verb, line string, err error) {
	entry := journal.Entry{
		Verb:      verb,
		Line:      line,
		Success:   err == nil,
		ErrorKind: core.KindOf(err),
		Size:      d.store.Len(),
		History:   d.store.HistoryLen(),
		At:        d.now().UTC(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	// The journal is an audit trail; a failed write never fails the command.
	if jerr := d.journal.Record(ctx, entry); jerr != nil {
		logger.WarnContext(ctx, "Failed to record command in journal",
			log.FieldOperation, log.OpRecord,
			log.FieldVerb, verb,
			log.FieldError, jerr)
	}
}

// Store returns the store commands run against.
func (d *Dispatcher) Store() *ledger.Store {
	return d.store
}
