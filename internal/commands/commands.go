// Package commands turns command lines into typed operations on the ledger.
package commands

import (
	"ledger/internal/core"
	"ledger/internal/ledger"
)

// Result is what a command produced. Queries fill Transactions or Balance;
// mutations set Mutated.
type Result struct {
	Transactions core.Collection
	Balance      int64
	HasBalance   bool
	Mutated      bool
}

// Command is one parsed, validated operation.
type Command interface {
	Name() string
	Execute(s *ledger.Store) (Result, error)
}

type (
	AddCommand struct {
		Day         int
		Amount      core.Amount
		Kind        core.Kind
		Description string
	}

	InsertCommand struct {
		Day         int
		Amount      core.Amount
		Kind        core.Kind
		Description string
	}

	RemoveDayCommand struct {
		Day int
	}

	RemoveRangeCommand struct {
		Start, End int
	}

	RemoveTypeCommand struct {
		Kind core.Kind
	}

	ReplaceCommand struct {
		Day         int
		Kind        core.Kind
		Description string
		Amount      core.Amount
	}

	FilterTypeCommand struct {
		Kind core.Kind
	}

	FilterTypeAmountCommand struct {
		Kind   core.Kind
		Amount core.Amount
	}

	UndoCommand struct{}

	ListAllCommand struct{}

	ListTypeCommand struct {
		Kind core.Kind
	}

	ListAmountCommand struct {
		Condition ledger.Condition
		Amount    core.Amount
	}

	BalanceCommand struct {
		Day int
	}
)

var mutated = Result{Mutated: true}

func (AddCommand) Name() string { return VerbAdd }
func (c AddCommand) Execute(s *ledger.Store) (Result, error) {
	s.AddToday(c.Amount, c.Kind, c.Description, c.Day)
	return mutated, nil
}

func (InsertCommand) Name() string { return VerbInsert }
func (c InsertCommand) Execute(s *ledger.Store) (Result, error) {
	s.Insert(c.Day, c.Amount, c.Kind, c.Description)
	return mutated, nil
}

func (RemoveDayCommand) Name() string { return VerbRemove }
func (c RemoveDayCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.RemoveByDay(c.Day))
}

func (RemoveRangeCommand) Name() string { return VerbRemove }
func (c RemoveRangeCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.RemoveByRange(c.Start, c.End))
}

func (RemoveTypeCommand) Name() string { return VerbRemove }
func (c RemoveTypeCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.RemoveByType(c.Kind))
}

func (ReplaceCommand) Name() string { return VerbReplace }
func (c ReplaceCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.ReplaceAmount(c.Day, c.Kind, c.Description, c.Amount))
}

func (FilterTypeCommand) Name() string { return VerbFilter }
func (c FilterTypeCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.FilterKeepType(c.Kind))
}

func (FilterTypeAmountCommand) Name() string { return VerbFilter }
func (c FilterTypeAmountCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.FilterKeepTypeUnderAmount(c.Kind, c.Amount))
}

func (UndoCommand) Name() string { return VerbUndo }
func (UndoCommand) Execute(s *ledger.Store) (Result, error) {
	return mutation(s.Undo())
}

func (ListAllCommand) Name() string { return VerbList }
func (ListAllCommand) Execute(s *ledger.Store) (Result, error) {
	return listing(s.ListAll())
}

func (ListTypeCommand) Name() string { return VerbList }
func (c ListTypeCommand) Execute(s *ledger.Store) (Result, error) {
	return listing(s.ListByType(c.Kind))
}

func (ListAmountCommand) Name() string { return VerbList }
func (c ListAmountCommand) Execute(s *ledger.Store) (Result, error) {
	return listing(s.ListByAmount(c.Condition, c.Amount))
}

func (BalanceCommand) Name() string { return VerbList }
func (c BalanceCommand) Execute(s *ledger.Store) (Result, error) {
	b, err := s.BalanceForDay(c.Day)
	if err != nil {
		return Result{}, err
	}
	return Result{Balance: b, HasBalance: true}, nil
}

func mutation(err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return mutated, nil
}

func listing(items core.Collection, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Transactions: items}, nil
}
