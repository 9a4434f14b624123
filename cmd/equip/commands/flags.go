package commands

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/equip/internal/core/domain"
)

var (
	_ pflag.Value = (*outputFormatValue)(nil)
	_ pflag.Value = (*numberBaseValue)(nil)
	_ pflag.Value = (*roundsValue)(nil)
	_ pflag.Value = (*repeatValue)(nil)
)

// outputFormatValue is a flag accepting one of domain.OutputFormats.
type outputFormatValue struct {
	format *domain.OutputFormat
}

func newOutputFormatValue(def domain.OutputFormat, p *domain.OutputFormat) *outputFormatValue {
	*p = def
	return &outputFormatValue{format: p}
}

func (v *outputFormatValue) String() string { return v.format.String() }
func (v *outputFormatValue) Type() string   { return "format" }

func (v *outputFormatValue) Set(s string) error {
	f, err := domain.ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*v.format = f
	return nil
}

// numberBaseValue is a flag accepting one of domain.NumberBases.
type numberBaseValue struct {
	base *domain.NumberBase
}

func newNumberBaseValue(def domain.NumberBase, p *domain.NumberBase) *numberBaseValue {
	*p = def
	return &numberBaseValue{base: p}
}

func (v *numberBaseValue) String() string { return v.base.String() }
func (v *numberBaseValue) Type() string   { return "format" }

func (v *numberBaseValue) Set(s string) error {
	b, err := domain.ParseNumberBase(s)
	if err != nil {
		return err
	}
	*v.base = b
	return nil
}

// roundsValue is a bcrypt cost flag limited to [domain.MinRounds, domain.MaxRounds].
type roundsValue struct {
	rounds *int
}

func newRoundsValue(def int, p *int) *roundsValue {
	*p = def
	return &roundsValue{rounds: p}
}

func (v *roundsValue) String() string { return strconv.Itoa(*v.rounds) }
func (v *roundsValue) Type() string   { return "int" }

func (v *roundsValue) Set(s string) error {
	n, err := domain.ParseRounds(s)
	if err != nil {
		return err
	}
	*v.rounds = n
	return nil
}

// repeatValue is a positive count flag.
type repeatValue struct {
	n *int
}

func newRepeatValue(def int, p *int) *repeatValue {
	*p = def
	return &repeatValue{n: p}
}

func (v *repeatValue) String() string { return strconv.Itoa(*v.n) }
func (v *repeatValue) Type() string   { return "int" }

func (v *repeatValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return domain.Annotate(domain.ErrInvalidRepeat, "repeat", s)
	}
	*v.n = n
	return nil
}

// parseNumber parses a finite decimal number from the command line.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.Annotate(domain.ErrInvalidNumber, "value", s)
	}
	return v, nil
}
