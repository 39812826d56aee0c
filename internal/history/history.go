// Package history keeps snapshots of the ledger for undo.
package history

import "ledger/internal/core"

// Stack is a LIFO stack of collection snapshots. Every stored snapshot is an
// independent copy; nothing outside the stack can reach it.
type Stack struct {
	states []core.Collection
	limit  int
}

// New returns an empty stack. A positive limit caps the number of snapshots
// kept, dropping the oldest first; zero means unlimited.
func New(limit int) *Stack {
	if limit < 0 {
		limit = 0
	}
	return &Stack{limit: limit}
}

// Push stores a copy of snapshot on top of the stack.
func (h *Stack) Push(snapshot core.Collection) {
	h.states = append(h.states, snapshot.Clone())
	if h.limit > 0 && len(h.states) > h.limit {
		h.states = h.states[1:]
	}
}

// Pop removes and returns the top snapshot.
func (h *Stack) Pop() (core.Collection, error) {
	if len(h.states) == 0 {
		return nil, core.NoHistoryf("cannot undo anymore")
	}
	top := h.states[len(h.states)-1]
	h.states[len(h.states)-1] = nil
	h.states = h.states[:len(h.states)-1]
	return top, nil
}

func (h *Stack) Len() int {
	return len(h.states)
}

// Snapshots returns copies of the stored snapshots, oldest first.
func (h *Stack) Snapshots() []core.Collection {
	out := make([]core.Collection, len(h.states))
	for i, s := range h.states {
		out[i] = s.Clone()
	}
	return out
}
