package core

import (
	"fmt"
	"strconv"
)

const (
	In Kind = iota + 1
	Out
)

const (
	MinDay = 1
	MaxDay = 30
)

type (
	// Kind is the direction of a transaction.
	Kind int

	Transaction struct {
		Day         int
		Amount      Amount
		Kind        Kind
		Description string
	}

	// Collection is an ordered sequence of transactions.
	Collection []Transaction
)

// String returns the textual form used on the command line ("in" or "out").
func (k Kind) String() string {
	switch k {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsValid reports whether k is In or Out.
func (k Kind) IsValid() bool {
	return k == In || k == Out
}

// Matches reports whether t is identified by the given day, kind and description.
func (t Transaction) Matches(day int, kind Kind, description string) bool {
	return t.Day == day && t.Kind == kind && t.Description == description
}

// String renders one listing line.
func (t Transaction) String() string {
	return fmt.Sprintf("day: %d   amount: %s   type: %s   description: %s",
		t.Day, t.Amount, t.Kind, t.Description)
}

// Clone returns an independent copy of c. A nil collection clones to an
// empty, non-nil one so snapshots of an empty ledger compare equal.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Equal reports element-wise equality.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}
