package history

import (
	"errors"
	"testing"

	"ledger/internal/core"
)

func tx(day int, desc string) core.Transaction {
	return core.Transaction{Day: day, Amount: core.NewAmount(10), Kind: core.In, Description: desc}
}

func TestPushPopOrder(t *testing.T) {
	h := New(0)
	h.Push(core.Collection{})
	h.Push(core.Collection{tx(1, "a")})

	top, err := h.Pop()
	if err != nil || !top.Equal(core.Collection{tx(1, "a")}) {
		t.Fatalf("unexpected top: %v err=%v", top, err)
	}
	top, err = h.Pop()
	if err != nil || len(top) != 0 {
		t.Fatalf("expected empty snapshot, got %v err=%v", top, err)
	}
	if _, err := h.Pop(); !errors.Is(err, core.ErrNoHistory) {
		t.Fatalf("expected no history error, got %v", err)
	}
}

func TestPushCopiesSnapshot(t *testing.T) {
	h := New(0)
	live := core.Collection{tx(1, "a")}
	h.Push(live)
	live[0].Description = "mutated"

	snaps := h.Snapshots()
	if snaps[0][0].Description != "a" {
		t.Fatalf("snapshot aliases the live collection")
	}
	snaps[0][0].Description = "also mutated"
	if h.Snapshots()[0][0].Description != "a" {
		t.Fatalf("Snapshots exposes internal state")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	h := New(2)
	h.Push(core.Collection{tx(1, "a")})
	h.Push(core.Collection{tx(2, "b")})
	h.Push(core.Collection{tx(3, "c")})

	if h.Len() != 2 {
		t.Fatalf("expected 2 snapshots, got %d", h.Len())
	}
	snaps := h.Snapshots()
	if snaps[0][0].Day != 2 || snaps[1][0].Day != 3 {
		t.Fatalf("unexpected snapshots %v", snaps)
	}
}

func TestNegativeLimitIsUnlimited(t *testing.T) {
	h := New(-5)
	for i := 0; i < 3; i++ {
		h.Push(nil)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 snapshots, got %d", h.Len())
	}
}
