package core

import (
	"errors"
	"testing"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		in  string
		out int
		ok  bool
	}{
		{"1", 1, true},
		{"30", 30, true},
		{"07", 7, true},
		{"0", 0, false},
		{"31", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{" 5", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDay(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%q expected validation error, got %v", tc.in, err)
		}
	}
}

func TestParseAmountKeepsText(t *testing.T) {
	a, err := ParseAmount("007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Value != 7 || a.String() != "007" {
		t.Fatalf("got value=%d text=%q", a.Value, a.String())
	}
	if a == NewAmount(7) {
		t.Fatalf("amounts with different text should not be equal")
	}
	b, _ := ParseAmount("7")
	if b != NewAmount(7) {
		t.Fatalf("canonical text should equal NewAmount")
	}
}

func TestValidateAmount(t *testing.T) {
	for _, raw := range []string{"0", "1", "100", "0042"} {
		if err := ValidateAmount(raw); err != nil {
			t.Errorf("%q expected ok, got %v", raw, err)
		}
	}
	for _, raw := range []string{"", "-3", "1.5", "ten", "99999999999999999999"} {
		if err := ValidateAmount(raw); !errors.Is(err, ErrValidation) {
			t.Errorf("%q expected validation error, got %v", raw, err)
		}
	}
}

func TestValidateType(t *testing.T) {
	if err := ValidateType("in"); err != nil {
		t.Fatalf("in: %v", err)
	}
	if err := ValidateType("out"); err != nil {
		t.Fatalf("out: %v", err)
	}
	for _, raw := range []string{"IN", "Out", "", "inout", " in"} {
		err := ValidateType(raw)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%q expected validation error, got %v", raw, err)
		}
		if err != nil && err.Error() != "type should be in or out" {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestTransactionString(t *testing.T) {
	amount, _ := ParseAmount("23")
	tx := Transaction{Day: 4, Amount: amount, Kind: Out, Description: "pizza"}
	want := "day: 4   amount: 23   type: out   description: pizza"
	if got := tx.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCollectionCloneIsIndependent(t *testing.T) {
	c := Collection{{Day: 1, Amount: NewAmount(5), Kind: In, Description: "gift"}}
	cp := c.Clone()
	cp[0].Description = "changed"
	if c[0].Description != "gift" {
		t.Fatalf("clone aliases the original")
	}
	if !Collection(nil).Clone().Equal(Collection{}) {
		t.Fatalf("nil clone should equal empty collection")
	}
}

func TestKindOf(t *testing.T) {
	cases := map[string]error{
		"validation":      Validationf("x"),
		"not_found":       NotFoundf("x"),
		"empty":           Emptyf("x"),
		"no_history":      NoHistoryf("x"),
		"unknown_command": UnknownCommandf("x"),
		"internal":        errors.New("boom"),
		"":                nil,
	}
	for want, err := range cases {
		if got := KindOf(err); got != want {
			t.Errorf("KindOf(%v) = %q, want %q", err, got, want)
		}
	}
}
