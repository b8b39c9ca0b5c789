package domain

import (
	"fmt"
	"strings"
)

// Pattern is the 6-bit polarity signature of a hexagram: bit i is set when
// line i (0 = bottom) is yang.
type Pattern uint8

// Trigram is a 3-bit polarity signature, bit 0 being its bottom line.
type Trigram uint8

const (
	// PatternCount is the number of distinct hexagrams.
	PatternCount = 64
	// TrigramCount is the number of distinct trigrams.
	TrigramCount = 8

	patternMask Pattern = 0b111111
	trigramMask         = 0b111
)

// Valid reports whether p fits in six bits.
func (p Pattern) Valid() bool {
	return p <= patternMask
}

// Yang reports the polarity of line i (0 = bottom).
func (p Pattern) Yang(i int) bool {
	return p&(1<<uint(i)) != 0
}

// Lower is the trigram formed by lines 0..2.
func (p Pattern) Lower() Trigram {
	return Trigram(p & trigramMask)
}

// Upper is the trigram formed by lines 3..5.
func (p Pattern) Upper() Trigram {
	return Trigram((p >> 3) & trigramMask)
}

// NuclearLower is the trigram formed by lines 1..3.
func (p Pattern) NuclearLower() Trigram {
	return Trigram((p >> 1) & trigramMask)
}

// NuclearUpper is the trigram formed by lines 2..4.
func (p Pattern) NuclearUpper() Trigram {
	return Trigram((p >> 2) & trigramMask)
}

// Opposite flips the polarity of every line.
func (p Pattern) Opposite() Pattern {
	return ^p & patternMask
}

// Inverse turns the hexagram upside down: line i becomes line 5-i.
func (p Pattern) Inverse() Pattern {
	var out Pattern
	for i := 0; i < 6; i++ {
		if p.Yang(i) {
			out |= 1 << uint(5-i)
		}
	}
	return out
}

// Nuclear builds the hexagram hidden in the four inner lines: lines 1,2,3
// become the lower trigram and lines 2,3,4 the upper one.
func (p Pattern) Nuclear() Pattern {
	return FromTrigrams(p.NuclearLower(), p.NuclearUpper())
}

// NuclearRoot applies Nuclear twice. The result is always one of the four
// hexagrams whose patterns alternate or repeat all the way up (1, 2, 63, 64),
// and that set is closed under Nuclear.
func (p Pattern) NuclearRoot() Pattern {
	return p.Nuclear().Nuclear()
}

// FlipLine toggles the polarity of line i.
func (p Pattern) FlipLine(i int) Pattern {
	return (p ^ (1 << uint(i))) & patternMask
}

// Distance counts the lines whose polarity differs between p and q.
func (p Pattern) Distance(q Pattern) int {
	x := (p ^ q) & patternMask
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// String renders the lines bottom to top as '1' (yang) and '0' (yin).
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(6)
	for i := 0; i < 6; i++ {
		if p.Yang(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// FromTrigrams composes a pattern from its lower and upper trigrams.
func FromTrigrams(lower, upper Trigram) Pattern {
	return Pattern(lower&trigramMask) | Pattern(upper&trigramMask)<<3
}

// ParsePattern accepts six '0'/'1' characters listing lines bottom to top,
// optionally prefixed with 0b. The prefix does not change the line order:
// 0b101010 and 101010 are the same hexagram.
func ParsePattern(s string) (Pattern, error) {
	in := strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToLower(in), "0b"); ok {
		in = rest
	}

	if len(in) != 6 {
		return 0, invalidPattern(s)
	}
	var p Pattern
	for i := 0; i < 6; i++ {
		switch in[i] {
		case '1':
			p |= 1 << uint(i)
		case '0':
		default:
			return 0, invalidPattern(s)
		}
	}
	return p, nil
}

func invalidPattern(s string) error {
	return &OpError{
		Op:   "domain.parse_pattern",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("pattern %q: want six 0/1 lines bottom to top, optionally prefixed with 0b: %w", s, ErrInvalidInput),
	}
}

// Yang reports the polarity of line i (0 = bottom) of the trigram.
func (t Trigram) Yang(i int) bool {
	return t&(1<<uint(i)) != 0
}

func (t Trigram) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if t.Yang(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// MarshalText encodes the pattern in its bottom-to-top line form.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts anything ParsePattern does.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (t Trigram) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
