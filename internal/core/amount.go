// Package core provides the ledger's domain types and field parsing.
//
// This file contains the Amount type. An amount keeps the text it was
// parsed from so that equality listings can compare the stored form.
package core

import "strconv"

// Amount is a non-negative integer amount of money.
type Amount struct {
	Value int64
	text  string
}

// NewAmount builds an amount from a value, using its canonical decimal text.
func NewAmount(v int64) Amount {
	return Amount{Value: v, text: strconv.FormatInt(v, 10)}
}

// String returns the amount as it was entered.
//
// Examples:
//
//	ParseAmount("7")   -> "7"
//	ParseAmount("007") -> "007"
func (a Amount) String() string {
	if a.text == "" {
		return strconv.FormatInt(a.Value, 10)
	}
	return a.text
}

// ParseAmount converts raw to an Amount, keeping raw as its textual form.
// It fails with a validation error unless raw is digits only.
func ParseAmount(raw string) (Amount, error) {
	if !isDigits(raw) {
		return Amount{}, Validationf("amount should be of type integer")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Amount{}, Validationf("amount is too large")
	}
	return Amount{Value: v, text: raw}, nil
}
