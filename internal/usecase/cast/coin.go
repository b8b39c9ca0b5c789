package cast

import (
	"context"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

const (
	coinHeads = 3
	coinTails = 2
	coinCount = 3
)

// CoinProbabilities is the symmetric three-coin distribution.
func CoinProbabilities() Distribution {
	return Distribution{
		domain.OldYin:    1.0 / 8,
		domain.YoungYang: 3.0 / 8,
		domain.YoungYin:  3.0 / 8,
		domain.OldYang:   1.0 / 8,
	}
}

// Coins draws one line by tossing three fair coins: heads count 3, tails 2.
func Coins(ctx context.Context, src ports.RandomnessSource) (domain.Line, error) {
	sum := 0
	for i := 0; i < coinCount; i++ {
		v, err := src.Draw(ctx, 2)
		if err != nil {
			return 0, err
		}
		sum += coinFace(v)
	}
	return domain.Line(sum), nil
}

func coinFace(draw int) int {
	if draw == 1 {
		return coinHeads
	}
	return coinTails
}
