package seed

import (
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestRandomRanges(t *testing.T) {
	items := Random(200, gofakeit.New(42))
	if len(items) != 200 {
		t.Fatalf("expected 200 transactions, got %d", len(items))
	}
	for i, tx := range items {
		if tx.Day < 1 || tx.Day > 30 {
			t.Fatalf("item %d: day %d out of range", i, tx.Day)
		}
		if tx.Amount.Value < 1 || tx.Amount.Value > 100 {
			t.Fatalf("item %d: amount %d out of range", i, tx.Amount.Value)
		}
		if !tx.Kind.IsValid() {
			t.Fatalf("item %d: invalid kind %v", i, tx.Kind)
		}
		if !slices.Contains(Descriptions, tx.Description) {
			t.Fatalf("item %d: unexpected description %q", i, tx.Description)
		}
	}
}

func TestRandomIsDeterministicForSeed(t *testing.T) {
	a := Random(10, gofakeit.New(7))
	b := Random(10, gofakeit.New(7))
	if !a.Equal(b) {
		t.Fatalf("same seed should give same transactions")
	}
}

func TestRandomZero(t *testing.T) {
	if got := Random(0, nil); len(got) != 0 {
		t.Fatalf("expected no transactions, got %d", len(got))
	}
}
