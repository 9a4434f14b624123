package domain

import (
	"strconv"
	"strings"
)

const (
	// MinRounds is the lowest accepted bcrypt cost.
	MinRounds = 1
	// MaxRounds is the highest accepted bcrypt cost.
	MaxRounds = 20
	// DefaultRounds is the bcrypt cost used when none is requested.
	DefaultRounds = 10
)

// ParseRounds parses a bcrypt cost factor and checks it lies in [MinRounds, MaxRounds].
func ParseRounds(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, Annotate(ErrRoundsNotInteger, "rounds", value)
	}
	if err := ValidateRounds(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateRounds checks an already parsed cost factor.
func ValidateRounds(n int) error {
	switch {
	case n < MinRounds:
		return Annotate(ErrRoundsNotPositive, "rounds", n)
	case n > MaxRounds:
		return Annotate(ErrRoundsTooHigh, "rounds", n)
	default:
		return nil
	}
}
