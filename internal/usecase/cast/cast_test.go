package cast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmr/iching/internal/domain"
)

func TestProbabilities_SumToOne(t *testing.T) {
	for _, m := range domain.Methods {
		dist, err := Probabilities(m)
		require.NoError(t, err)
		sum := 0.0
		for _, p := range dist {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-12, string(m))
	}
}

func TestLine_UnknownMethod(t *testing.T) {
	_, err := Line(context.Background(), domain.Method("dice"), newSeededSource(1))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = Probabilities(domain.Method("dice"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLines_SixValidLines(t *testing.T) {
	for _, m := range domain.Methods {
		h, err := Lines(context.Background(), m, newSeededSource(7))
		require.NoError(t, err)
		assert.True(t, h.Valid(), string(m))
	}
}

func TestLines_AbortsOnFailedDraw(t *testing.T) {
	boom := domain.SourceUnavailable("test.draw", "", nil)
	// Four lines of coins succeed, the fifth fails on its first toss.
	src := &scriptedSource{draws: make([]int, 64), err: boom, failAt: 12}

	h, err := Lines(context.Background(), domain.MethodCoin, src)
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Equal(t, domain.Hexagram{}, h)
	assert.Len(t, src.bounds, 13)
}

func TestLines_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Lines(ctx, domain.MethodCoin, newSeededSource(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLines_IndependentPerLine(t *testing.T) {
	// Adjacent lines of a seeded stream should not be correlated.
	const hexagrams = 20_000
	src := newSeededSource(11)

	same := 0
	for i := 0; i < hexagrams; i++ {
		h, err := Lines(context.Background(), domain.MethodCoin, src)
		require.NoError(t, err)
		if h[0] == h[1] {
			same++
		}
	}
	// P(equal) = 2*(1/8)^2 + 2*(3/8)^2 = 20/64.
	assert.InDelta(t, 20.0/64, float64(same)/hexagrams, 0.02)
}
