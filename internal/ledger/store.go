// Package ledger holds the in-memory transaction store and its undo history.
//
// Every mutating operation either fails and leaves the collection and the
// history untouched, or applies completely and pushes exactly one snapshot of
// the collection as it was before the change.
package ledger

import (
	"math/big"

	"ledger/internal/core"
	"ledger/internal/history"
	"ledger/internal/log"
)

// Condition selects how ListByAmount compares amounts.
type Condition string

const (
	Less    Condition = "<"
	Equal   Condition = "="
	Greater Condition = ">"
)

// ParseCondition maps "<", "=" and ">" to a Condition.
func ParseCondition(raw string) (Condition, bool) {
	switch c := Condition(raw); c {
	case Less, Equal, Greater:
		return c, true
	default:
		return "", false
	}
}

// Store owns the live collection and its history. It is not safe for
// concurrent use.
type Store struct {
	items   core.Collection
	history *history.Stack
	logger  *log.Logger
}

// New returns a store seeded with a copy of initial. historyLimit caps the
// number of undo levels; zero means unlimited.
func New(initial core.Collection, historyLimit int, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Discard()
	}
	return &Store{
		items:   initial.Clone(),
		history: history.New(historyLimit),
		logger:  logger.WithComponent(log.ComponentLedger),
	}
}

// AddToday appends a transaction dated today.
func (s *Store) AddToday(amount core.Amount, kind core.Kind, description string, today int) {
	s.append(log.OpAdd, core.Transaction{Day: today, Amount: amount, Kind: kind, Description: description})
}

// Insert appends a transaction on the given day. Days need not be unique.
func (s *Store) Insert(day int, amount core.Amount, kind core.Kind, description string) {
	s.append(log.OpInsert, core.Transaction{Day: day, Amount: amount, Kind: kind, Description: description})
}

func (s *Store) append(op string, t core.Transaction) {
	s.history.Push(s.items)
	s.items = append(s.items, t)
	s.logger.Debug("Transaction appended",
		log.FieldOperation, op,
		log.FieldDay, t.Day,
		log.FieldAmount, t.Amount.String(),
		log.FieldKind, t.Kind.String(),
		log.FieldDescription, t.Description,
		log.FieldSize, len(s.items))
}

// RemoveByDay removes every transaction on day.
func (s *Store) RemoveByDay(day int) error {
	return s.removeWhere(log.OpRemove, func(t core.Transaction) bool {
		return t.Day == day
	}, "there are no transactions for that day")
}

// RemoveByRange removes every transaction with start <= day <= end.
// Callers guarantee start <= end.
func (s *Store) RemoveByRange(start, end int) error {
	return s.removeWhere(log.OpRemove, func(t core.Transaction) bool {
		return start <= t.Day && t.Day <= end
	}, "there are no transactions between those days")
}

// RemoveByType removes every transaction of kind.
func (s *Store) RemoveByType(kind core.Kind) error {
	return s.removeWhere(log.OpRemove, func(t core.Transaction) bool {
		return t.Kind == kind
	}, "there are no transactions of that type")
}

// FilterKeepType keeps only transactions of kind.
func (s *Store) FilterKeepType(kind core.Kind) error {
	return s.removeWhere(log.OpFilter, func(t core.Transaction) bool {
		return t.Kind != kind
	}, "the transactions are already filtered")
}

// FilterKeepTypeUnderAmount keeps only transactions of kind whose amount is
// strictly below threshold.
func (s *Store) FilterKeepTypeUnderAmount(kind core.Kind, threshold core.Amount) error {
	return s.removeWhere(log.OpFilter, func(t core.Transaction) bool {
		return t.Kind != kind || t.Amount.Value >= threshold.Value
	}, "the transactions are already filtered")
}

// removeWhere drops every element matching drop, keeping survivor order.
func (s *Store) removeWhere(op string, drop func(core.Transaction) bool, notFound string) error {
	survivors := make(core.Collection, 0, len(s.items))
	for _, t := range s.items {
		if !drop(t) {
			survivors = append(survivors, t)
		}
	}
	removed := len(s.items) - len(survivors)
	if removed == 0 {
		return core.NotFoundf("%s", notFound)
	}

	s.history.Push(s.items)
	s.items = survivors
	s.logger.Debug("Transactions removed",
		log.FieldOperation, op,
		log.FieldRemoved, removed,
		log.FieldSize, len(s.items))
	return nil
}

// ReplaceAmount sets the amount of the first transaction matching day, kind
// and description.
func (s *Store) ReplaceAmount(day int, kind core.Kind, description string, amount core.Amount) error {
	for i := range s.items {
		if !s.items[i].Matches(day, kind, description) {
			continue
		}
		s.history.Push(s.items)
		s.items[i].Amount = amount
		s.logger.Debug("Transaction amount replaced",
			log.FieldOperation, log.OpReplace,
			log.FieldDay, day,
			log.FieldAmount, amount.String())
		return nil
	}
	return core.NotFoundf("the transaction does not exist")
}

// ListAll returns a copy of every transaction.
func (s *Store) ListAll() (core.Collection, error) {
	if len(s.items) == 0 {
		return nil, core.Emptyf("there are no transactions")
	}
	return s.items.Clone(), nil
}

// ListByType returns the transactions of kind, in order.
func (s *Store) ListByType(kind core.Kind) (core.Collection, error) {
	out := s.selectWhere(func(t core.Transaction) bool { return t.Kind == kind })
	if len(out) == 0 {
		return nil, core.NotFoundf("there are no transactions of that type")
	}
	return out, nil
}

// ListByAmount returns the transactions whose amount satisfies cond against
// amount. Less and Greater compare values; Equal compares the stored text with
// the text of amount, so "007" and "7" do not match each other.
func (s *Store) ListByAmount(cond Condition, amount core.Amount) (core.Collection, error) {
	var match func(core.Transaction) bool
	switch cond {
	case Less:
		match = func(t core.Transaction) bool { return t.Amount.Value < amount.Value }
	case Greater:
		match = func(t core.Transaction) bool { return t.Amount.Value > amount.Value }
	case Equal:
		match = func(t core.Transaction) bool { return t.Amount.String() == amount.String() }
	default:
		return nil, core.Validationf("condition should be one of <, =, >")
	}

	out := s.selectWhere(match)
	if len(out) == 0 {
		return nil, core.NotFoundf("there are no transactions that satisfy the condition")
	}
	return out, nil
}

// BalanceForDay returns incoming minus outgoing amounts on day. The sum is
// exact; a result outside the int64 range is reported as a validation error.
func (s *Store) BalanceForDay(day int) (int64, error) {
	found := false
	balance := new(big.Int)
	for _, t := range s.items {
		if t.Day != day {
			continue
		}
		found = true
		v := big.NewInt(t.Amount.Value)
		if t.Kind == core.In {
			balance.Add(balance, v)
		} else {
			balance.Sub(balance, v)
		}
	}
	if !found {
		return 0, core.NotFoundf("there are no transactions for that day")
	}
	if !balance.IsInt64() {
		return 0, core.Validationf("balance is too large")
	}
	s.logger.Debug("Balance computed",
		log.FieldOperation, log.OpBalance,
		log.FieldDay, day)
	return balance.Int64(), nil
}

// Undo restores the most recent snapshot. The current state is discarded.
func (s *Store) Undo() error {
	prev, err := s.history.Pop()
	if err != nil {
		return err
	}
	s.items = prev
	s.logger.Debug("Undo applied",
		log.FieldOperation, log.OpUndo,
		log.FieldSize, len(s.items),
		log.FieldHistory, s.history.Len())
	return nil
}

func (s *Store) selectWhere(keep func(core.Transaction) bool) core.Collection {
	var out core.Collection
	for _, t := range s.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Transactions returns a copy of the live collection, possibly empty.
func (s *Store) Transactions() core.Collection {
	return s.items.Clone()
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) HistoryLen() int {
	return s.history.Len()
}

// Snapshots returns copies of the undo history, oldest first.
func (s *Store) Snapshots() []core.Collection {
	return s.history.Snapshots()
}
