package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldCommand     = "command"
	FieldVerb        = "verb"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldDay         = "day"
	FieldAmount      = "amount"
	FieldKind        = "type"
	FieldDescription = "description"
	FieldRemoved     = "removed"
	FieldSize        = "size"
	FieldHistory     = "history"
	FieldDuration    = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentLedger   = "ledger"
	ComponentCommands = "commands"
	ComponentJournal  = "journal"
	ComponentStorage  = "storage"
	ComponentAMQP     = "amqp"
	ComponentREPL     = "repl"
)

// Operations defines standard operation names
const (
	OpAdd      = "add"
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpFilter   = "filter"
	OpReplace  = "replace"
	OpList     = "list"
	OpBalance  = "balance"
	OpUndo     = "undo"
	OpParse    = "parse"
	OpRecord   = "record"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error type field when errorType is set
func (f LogFields) WithErrorType(errorType string) LogFields {
	if errorType != "" {
		f[FieldErrorType] = errorType
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithCommand adds the raw command line and its verb
func (f LogFields) WithCommand(verb, line string) LogFields {
	f[FieldVerb] = verb
	f[FieldCommand] = line
	return f
}

// WithState adds ledger and history sizes
func (f LogFields) WithState(size, history int) LogFields {
	f[FieldSize] = size
	f[FieldHistory] = history
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
