package cast

import (
	"context"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

const (
	// yarrowStalks is the bundle size once the observer stalk is set aside.
	yarrowStalks = 49
	yarrowRounds = 3
	// minPile keeps both piles large enough to count off a full four.
	minPile = 4
)

// YarrowProbabilities is the classical yarrow distribution.
func YarrowProbabilities() Distribution {
	return Distribution{
		domain.OldYin:    1.0 / 16,
		domain.YoungYang: 5.0 / 16,
		domain.YoungYin:  7.0 / 16,
		domain.OldYang:   3.0 / 16,
	}
}

// YarrowStalks draws one line by running the three rounds of the stalk
// ritual, one split draw per round.
func YarrowStalks(ctx context.Context, src ports.RandomnessSource) (domain.Line, error) {
	r := newRitual()
	for round := 0; round < yarrowRounds; round++ {
		split, err := src.Draw(ctx, r.window())
		if err != nil {
			return 0, err
		}
		r = r.divide(split)
	}
	return r.line(), nil
}

// StalkLine replays the ritual from the split draws of its three rounds.
func StalkLine(splits [yarrowRounds]int) domain.Line {
	r := newRitual()
	for _, s := range splits {
		r = r.divide(s)
	}
	return r.line()
}

// ritual is the stalk heap between rounds.
type ritual struct {
	heap int
}

func newRitual() ritual {
	return ritual{heap: yarrowStalks}
}

// window is the number of admissible left pile sizes for the current heap.
// Sizes start at minPile and the count is a multiple of four, so the left
// pile's residue mod 4 is uniform whenever the split draw is.
func (r ritual) window() int {
	return (r.heap - 2*minPile) / 4 * 4
}

// divide splits the heap with a left pile of minPile+split stalks, hangs one
// stalk from the right pile, counts both piles off by fours and discards the
// hung stalk and both remainders.
func (r ritual) divide(split int) ritual {
	w := r.window()
	split %= w
	if split < 0 {
		split += w
	}

	left := minPile + split
	right := r.heap - left - 1
	discard := 1 + remainder(left) + remainder(right)
	return ritual{heap: r.heap - discard}
}

// line reads the value off the remaining heap: 24, 28, 32 or 36 stalks.
func (r ritual) line() domain.Line {
	return domain.Line(r.heap / 4)
}

// remainder is what is left after counting a pile off by fours; an exact
// multiple leaves a full four.
func remainder(pile int) int {
	if rem := pile % 4; rem != 0 {
		return rem
	}
	return 4
}
