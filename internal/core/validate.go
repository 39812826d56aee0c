package core

import "strconv"

// ValidateDay fails unless raw is digits only and between MinDay and MaxDay.
func ValidateDay(raw string) error {
	_, err := ParseDay(raw)
	return err
}

// ValidateAmount fails unless raw is digits only.
func ValidateAmount(raw string) error {
	_, err := ParseAmount(raw)
	return err
}

// ValidateType fails unless raw is exactly "in" or "out".
func ValidateType(raw string) error {
	_, err := ParseKind(raw)
	return err
}

// ParseDay validates raw and returns the day it denotes.
func ParseDay(raw string) (int, error) {
	if !isDigits(raw) {
		return 0, Validationf("day should be of type integer")
	}
	d, err := strconv.Atoi(raw)
	if err != nil || d < MinDay || d > MaxDay {
		return 0, Validationf("day should be between %d and %d", MinDay, MaxDay)
	}
	return d, nil
}

// ParseKind validates raw and returns the kind it denotes.
func ParseKind(raw string) (Kind, error) {
	switch raw {
	case "in":
		return In, nil
	case "out":
		return Out, nil
	default:
		return 0, Validationf("type should be in or out")
	}
}

// IsDigits reports whether s is a non-empty run of ASCII decimal digits.
func IsDigits(s string) bool {
	return isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
