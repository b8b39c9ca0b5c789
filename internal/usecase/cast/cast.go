// Package cast generates single lines with the two traditional procedures.
//
// Generators only ever call RandomnessSource.Draw, so they behave the same
// whether the draws come from the remote service or the local generator.
// Every line is drawn independently of the ones before it.
package cast

import (
	"context"
	"fmt"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// Distribution maps each line value to its probability.
type Distribution map[domain.Line]float64

// Probabilities returns the exact line distribution of a method.
func Probabilities(method domain.Method) (Distribution, error) {
	switch method {
	case domain.MethodYarrowStalks:
		return YarrowProbabilities(), nil
	case domain.MethodCoin:
		return CoinProbabilities(), nil
	}
	return nil, unknownMethod(method)
}

// Line draws one line with the given method.
func Line(ctx context.Context, method domain.Method, src ports.RandomnessSource) (domain.Line, error) {
	switch method {
	case domain.MethodYarrowStalks:
		return YarrowStalks(ctx, src)
	case domain.MethodCoin:
		return Coins(ctx, src)
	}
	return 0, unknownMethod(method)
}

// Lines draws six lines bottom to top. A failed draw aborts the hexagram.
func Lines(ctx context.Context, method domain.Method, src ports.RandomnessSource) (domain.Hexagram, error) {
	var h domain.Hexagram
	for i := range h {
		if err := ctx.Err(); err != nil {
			return domain.Hexagram{}, err
		}
		l, err := Line(ctx, method, src)
		if err != nil {
			return domain.Hexagram{}, err
		}
		h[i] = l
	}
	return h, nil
}

func unknownMethod(method domain.Method) error {
	return &domain.OpError{
		Op:   "cast.line",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("unknown method %q: %w", method, domain.ErrInvalidInput),
	}
}
