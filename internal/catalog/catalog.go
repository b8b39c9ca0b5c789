// Package catalog holds the static King Wen table of the 64 hexagrams and
// the eight trigrams.
//
// A Catalog is validated once when built and is read-only afterwards, so a
// single instance is shared by every reading and analysis in the process.
package catalog

import (
	"fmt"
	"sync"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// Catalog is the bijective pattern <-> King Wen number table.
type Catalog struct {
	byNumber  [domain.PatternCount]domain.Entry
	byPattern [domain.PatternCount]int
	trigrams  [domain.TrigramCount]domain.TrigramInfo
}

var _ ports.HexagramCatalog = (*Catalog)(nil)

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return New(builtinEntries(), builtinTrigrams())
})

// Load returns the built-in catalog, validating it on first use.
func Load() (*Catalog, error) {
	return loadDefault()
}

// Default returns the built-in catalog and panics if it is corrupt. Callers
// that must report the failure instead of crashing use Load.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog and verifies that entries cover every pattern and
// every number 1..64 exactly once, and that trigrams cover all eight forms.
func New(entries []domain.Entry, trigrams []domain.TrigramInfo) (*Catalog, error) {
	if len(entries) != domain.PatternCount {
		return nil, invariant("want %d entries, got %d", domain.PatternCount, len(entries))
	}
	if len(trigrams) != domain.TrigramCount {
		return nil, invariant("want %d trigrams, got %d", domain.TrigramCount, len(trigrams))
	}

	c := &Catalog{}
	var seenNumber [domain.PatternCount]bool
	var seenPattern [domain.PatternCount]bool

	for _, e := range entries {
		if e.Number < 1 || e.Number > domain.PatternCount {
			return nil, invariant("entry %q has number %d outside 1..64", e.Name, e.Number)
		}
		if !e.Pattern.Valid() {
			return nil, invariant("entry %d has pattern %d outside 0..63", e.Number, e.Pattern)
		}
		if seenNumber[e.Number-1] {
			return nil, invariant("number %d listed twice", e.Number)
		}
		if seenPattern[e.Pattern] {
			return nil, invariant("pattern %s listed twice (second time as %d)", e.Pattern, e.Number)
		}
		seenNumber[e.Number-1] = true
		seenPattern[e.Pattern] = true

		c.byNumber[e.Number-1] = e
		c.byPattern[e.Pattern] = e.Number
	}

	var seenTrigram [domain.TrigramCount]bool
	for _, t := range trigrams {
		if t.Trigram >= domain.TrigramCount {
			return nil, invariant("trigram %q has lines %d outside 0..7", t.Name, t.Trigram)
		}
		if seenTrigram[t.Trigram] {
			return nil, invariant("trigram %s listed twice", t.Trigram)
		}
		seenTrigram[t.Trigram] = true
		c.trigrams[t.Trigram] = t
	}

	return c, nil
}

// ByPattern is total over 0..63; higher bits are ignored.
func (c *Catalog) ByPattern(p domain.Pattern) domain.Entry {
	return c.byNumber[c.byPattern[p&0b111111]-1]
}

// ByNumber looks an entry up by its King Wen number.
func (c *Catalog) ByNumber(n int) (domain.Entry, error) {
	if n < 1 || n > domain.PatternCount {
		return domain.Entry{}, &domain.OpError{
			Op:   "catalog.by_number",
			Kind: domain.KindOutOfRange,
			Err:  fmt.Errorf("hexagram %d not in 1..64: %w", n, domain.ErrOutOfRange),
		}
	}
	return c.byNumber[n-1], nil
}

// Trigram describes one of the eight trigrams.
func (c *Catalog) Trigram(t domain.Trigram) domain.TrigramInfo {
	return c.trigrams[t&0b111]
}

// Trigrams returns the lower and upper trigram of a pattern.
func (c *Catalog) Trigrams(p domain.Pattern) (lower, upper domain.TrigramInfo) {
	return c.Trigram(p.Lower()), c.Trigram(p.Upper())
}

// Entries returns a copy of the table in King Wen order.
func (c *Catalog) Entries() []domain.Entry {
	out := make([]domain.Entry, len(c.byNumber))
	copy(out, c.byNumber[:])
	return out
}

func invariant(format string, args ...any) error {
	return &domain.OpError{
		Op:   "catalog.new",
		Kind: domain.KindCatalogInvariant,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrCatalogInvariant),
	}
}
