// Package analysis relates hexagrams to each other: the relational report of
// a single hexagram, shortest transformation paths between two hexagrams,
// and the cost of walking a whole sequence.
package analysis

import (
	"fmt"

	"github.com/martinmr/iching/internal/domain"
)

// Operation is one transformation a search may apply to a pattern.
type Operation int

const (
	// NoOp marks the start of a path.
	NoOp Operation = iota
	FlipLine1
	FlipLine2
	FlipLine3
	FlipLine4
	FlipLine5
	FlipLine6
	OppositeLower
	OppositeUpper
	InverseLower
	InverseUpper
	SwapTrigrams
	MirrorTrigrams
	Nuclear
	Opposite
	Inverse
	MixLowerFirst
	MixUpperFirst
)

// Operations lists every searchable operation in search order.
var Operations = []Operation{
	FlipLine1, FlipLine2, FlipLine3, FlipLine4, FlipLine5, FlipLine6,
	OppositeLower, OppositeUpper,
	InverseLower, InverseUpper,
	SwapTrigrams, MirrorTrigrams,
	Nuclear, Opposite, Inverse,
	MixLowerFirst, MixUpperFirst,
}

var operationNames = map[Operation]string{
	NoOp:           "start",
	FlipLine1:      "flip-line-1",
	FlipLine2:      "flip-line-2",
	FlipLine3:      "flip-line-3",
	FlipLine4:      "flip-line-4",
	FlipLine5:      "flip-line-5",
	FlipLine6:      "flip-line-6",
	OppositeLower:  "opposite-lower",
	OppositeUpper:  "opposite-upper",
	InverseLower:   "inverse-lower",
	InverseUpper:   "inverse-upper",
	SwapTrigrams:   "swap-trigrams",
	MirrorTrigrams: "mirror-trigrams",
	Nuclear:        "nuclear",
	Opposite:       "opposite",
	Inverse:        "inverse",
	MixLowerFirst:  "mix-lower-first",
	MixUpperFirst:  "mix-upper-first",
}

func (o Operation) String() string {
	if s, ok := operationNames[o]; ok {
		return s
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

const (
	lowerMask domain.Pattern = 0b000111
	upperMask domain.Pattern = 0b111000
)

// Apply transforms p. NoOp and unknown operations return p unchanged.
func (o Operation) Apply(p domain.Pattern) domain.Pattern {
	switch o {
	case FlipLine1, FlipLine2, FlipLine3, FlipLine4, FlipLine5, FlipLine6:
		return p.FlipLine(int(o - FlipLine1))
	case OppositeLower:
		return p ^ lowerMask
	case OppositeUpper:
		return p ^ upperMask
	case InverseLower:
		return domain.FromTrigrams(reverseTrigram(p.Lower()), p.Upper())
	case InverseUpper:
		return domain.FromTrigrams(p.Lower(), reverseTrigram(p.Upper()))
	case SwapTrigrams:
		return domain.FromTrigrams(p.Upper(), p.Lower())
	case MirrorTrigrams:
		return domain.FromTrigrams(reverseTrigram(p.Lower()), reverseTrigram(p.Upper()))
	case Nuclear:
		return p.Nuclear()
	case Opposite:
		return p.Opposite()
	case Inverse:
		return p.Inverse()
	case MixLowerFirst:
		return interleave(p.Lower(), p.Upper())
	case MixUpperFirst:
		return interleave(p.Upper(), p.Lower())
	}
	return p
}

// reverseTrigram swaps the bottom and top line of a trigram.
func reverseTrigram(t domain.Trigram) domain.Trigram {
	return t&0b010 | (t&1)<<2 | (t>>2)&1
}

// interleave builds a pattern from alternating lines of a and b, bottom up:
// a0 b0 a1 b1 a2 b2.
func interleave(a, b domain.Trigram) domain.Pattern {
	var p domain.Pattern
	for i := 0; i < 3; i++ {
		if a.Yang(i) {
			p |= 1 << uint(2*i)
		}
		if b.Yang(i) {
			p |= 1 << uint(2*i+1)
		}
	}
	return p
}
