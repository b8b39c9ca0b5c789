package analysis

import (
	"context"
	"errors"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmr/iching/internal/catalog"
	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/pseudorandom"
	"github.com/martinmr/iching/internal/ports"
)

func seeded(base uint64) SourceFactory {
	return func(worker int) (ports.RandomnessSource, error) {
		return pseudorandom.New(base + uint64(worker)), nil
	}
}

func TestSequencer_Pair(t *testing.T) {
	s := NewSequencer(catalog.Default())
	r, err := s.Analyze([]int{1, 2})
	require.NoError(t, err)

	assert.Equal(t, 1, r.TotalOps)
	assert.Equal(t, 6, r.TotalLineChanges)
	assert.Equal(t, 0, r.TotalPaths.Cmp(big.NewInt(1)))
	assert.InDelta(t, 6.0, r.ChangesPerOp(), 1e-9)
	require.Len(t, r.Transitions, 1)
	assert.Equal(t, 1, r.Transitions[0].From)
	assert.Equal(t, 2, r.Transitions[0].To)
}

func TestSequencer_KingWen(t *testing.T) {
	s := NewSequencer(catalog.Default())
	r, err := s.Analyze(KingWen())
	require.NoError(t, err)

	assert.Len(t, r.Transitions, 63)
	assert.GreaterOrEqual(t, r.TotalOps, 63)
	assert.GreaterOrEqual(t, r.TotalLineChanges, r.TotalOps)
	assert.Equal(t, 1, r.TotalPaths.Sign())

	ops, changes := 0, 0
	for _, tr := range r.Transitions {
		require.NotEmpty(t, tr.Paths)
		ops += tr.Paths[0].Ops()
		changes += tr.Paths[0].LineChanges()
	}
	assert.Equal(t, ops, r.TotalOps)
	assert.Equal(t, changes, r.TotalLineChanges)
}

func TestSequencer_SingleAndEmpty(t *testing.T) {
	s := NewSequencer(catalog.Default())

	r, err := s.Analyze([]int{5})
	require.NoError(t, err)
	assert.Zero(t, r.TotalOps)
	assert.Zero(t, r.ChangesPerOp())
	assert.Equal(t, 0, r.TotalPaths.Cmp(big.NewInt(1)))

	r, err = s.Analyze(nil)
	require.NoError(t, err)
	assert.Empty(t, r.Transitions)
}

func TestSequencer_OutOfRange(t *testing.T) {
	_, err := NewSequencer(catalog.Default()).Analyze([]int{1, 65})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindOutOfRange))
}

func TestShuffle_IsPermutation(t *testing.T) {
	seq := KingWen()
	require.NoError(t, Shuffle(context.Background(), pseudorandom.New(5), seq))
	assert.NotEqual(t, KingWen(), seq)

	sorted := slices.Clone(seq)
	slices.Sort(sorted)
	assert.Equal(t, KingWen(), sorted)
}

func TestShuffle_PropagatesSourceError(t *testing.T) {
	seq := KingWen()
	err := Shuffle(context.Background(), failingSource{}, seq)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestMinRandom_SingleWorkerPicksMinimum(t *testing.T) {
	s := NewSequencer(catalog.Default())
	const samples = 6

	got, err := s.MinRandom(context.Background(), samples, 1, seeded(100))
	require.NoError(t, err)
	assert.Nil(t, got.Transitions)

	src := pseudorandom.New(100)
	best := -1
	for i := 0; i < samples; i++ {
		seq := KingWen()
		require.NoError(t, Shuffle(context.Background(), src, seq))
		r, err := s.Analyze(seq)
		require.NoError(t, err)
		if best < 0 || r.TotalOps < best {
			best = r.TotalOps
		}
	}
	assert.Equal(t, best, got.TotalOps)
}

func TestMinRandom_ParallelWorkers(t *testing.T) {
	s := NewSequencer(catalog.Default())
	got, err := s.MinRandom(context.Background(), 8, 4, seeded(7))
	require.NoError(t, err)

	sorted := slices.Clone(got.Sequence)
	slices.Sort(sorted)
	assert.Equal(t, KingWen(), sorted)

	again, err := s.Analyze(got.Sequence)
	require.NoError(t, err)
	assert.Equal(t, again.TotalOps, got.TotalOps)
}

func TestMinRandom_Errors(t *testing.T) {
	s := NewSequencer(catalog.Default())

	_, err := s.MinRandom(context.Background(), 0, 1, seeded(1))
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	boom := errors.New("no entropy")
	_, err = s.MinRandom(context.Background(), 4, 2, func(int) (ports.RandomnessSource, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.MinRandom(context.Background(), 4, 2, func(int) (ports.RandomnessSource, error) {
		return failingSource{}, nil
	})
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

type failingSource struct{}

func (failingSource) Draw(context.Context, int) (int, error) {
	return 0, domain.SourceUnavailable("test.draw", "", nil)
}
