package domain

import (
	"fmt"
	"strings"
	"time"
)

// Method selects the line generation procedure.
type Method string

const (
	MethodYarrowStalks Method = "yarrow-stalks"
	MethodCoin         Method = "coin"
)

// Methods lists every supported method.
var Methods = []Method{MethodYarrowStalks, MethodCoin}

// Randomness selects the randomness source variant.
type Randomness string

const (
	// RandomnessRemote draws from the remote true-random service.
	RandomnessRemote Randomness = "random"
	// RandomnessLocal draws from the local pseudorandom generator.
	RandomnessLocal Randomness = "pseudorandom"
)

// RandomnessModes lists every supported source variant.
var RandomnessModes = []Randomness{RandomnessRemote, RandomnessLocal}

// ParseMethod maps a user supplied method name.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodYarrowStalks, MethodCoin:
		return m, nil
	}
	return "", &OpError{
		Op:   "domain.parse_method",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("unsupported method %q (expected yarrow-stalks|coin): %w", s, ErrInvalidInput),
	}
}

// ParseRandomness maps a user supplied randomness mode.
func ParseRandomness(s string) (Randomness, error) {
	r := Randomness(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RandomnessRemote, RandomnessLocal:
		return r, nil
	}
	return "", &OpError{
		Op:   "domain.parse_randomness",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("unsupported randomness %q (expected random|pseudorandom): %w", s, ErrInvalidInput),
	}
}

// Reading is the immutable outcome of one divination.
//
// Secondary is non-nil iff ChangingLines is non-empty. Its pattern equals the
// primary pattern with every changing bit flipped and all of its lines are young.
type Reading struct {
	Question       string     `json:"question,omitempty" yaml:"question,omitempty"`
	Method         Method     `json:"method" yaml:"method"`
	Randomness     Randomness `json:"randomness,omitempty" yaml:"randomness,omitempty"`
	CastAt         time.Time  `json:"cast_at" yaml:"cast_at"`
	Primary        Hexagram   `json:"primary" yaml:"primary"`
	PrimaryEntry   Entry      `json:"primary_entry" yaml:"primary_entry"`
	ChangingLines  []int      `json:"changing_lines" yaml:"changing_lines"`
	Secondary      *Hexagram  `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	SecondaryEntry *Entry     `json:"secondary_entry,omitempty" yaml:"secondary_entry,omitempty"`
}

// HasSecondary reports whether the reading carries a resulting hexagram.
func (r Reading) HasSecondary() bool {
	return r.Secondary != nil
}

// Assembly is the pure part of a reading: the primary hexagram, its
// changing lines and, when any line changes, the resulting hexagram.
type Assembly struct {
	Primary       Hexagram
	ChangingLines []int
	Secondary     *Hexagram
}

// Assemble derives the changing set and the resulting hexagram from six
// drawn lines. It performs no I/O and cannot fail on valid lines.
func Assemble(lines Hexagram) (Assembly, error) {
	if !lines.Valid() {
		return Assembly{}, &OpError{
			Op:   "domain.assemble",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("lines %v: %w", lines, ErrInvalidInput),
		}
	}

	out := Assembly{
		Primary:       lines,
		ChangingLines: lines.ChangingLines(),
	}
	if out.ChangingLines == nil {
		out.ChangingLines = []int{}
	}
	if len(out.ChangingLines) > 0 {
		secondary := lines.Resolved()
		out.Secondary = &secondary
	}
	return out, nil
}
