package core

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these to classify a failure.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrEmpty          = errors.New("empty ledger")
	ErrNoHistory      = errors.New("no history")
	ErrUnknownCommand = errors.New("unknown command")
)

// Error is a ledger failure carrying a kind and a user-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validationf returns an ErrValidation error.
func Validationf(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

// NotFoundf returns an ErrNotFound error.
func NotFoundf(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

// Emptyf returns an ErrEmpty error.
func Emptyf(format string, args ...any) error {
	return newError(ErrEmpty, format, args...)
}

// NoHistoryf returns an ErrNoHistory error.
func NoHistoryf(format string, args ...any) error {
	return newError(ErrNoHistory, format, args...)
}

// UnknownCommandf returns an ErrUnknownCommand error.
func UnknownCommandf(format string, args ...any) error {
	return newError(ErrUnknownCommand, format, args...)
}

// KindOf returns a short name for the kind of err, or "internal" when err is
// not a ledger error. It returns "" for nil.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrNoHistory):
		return "no_history"
	case errors.Is(err, ErrUnknownCommand):
		return "unknown_command"
	default:
		return "internal"
	}
}
