package cast

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/martinmr/iching/internal/ports"
)

var (
	_ ports.RandomnessSource = (*scriptedSource)(nil)
	_ ports.RandomnessSource = (*seededSource)(nil)
)

// scriptedSource replays fixed draws and records every requested bound.
type scriptedSource struct {
	draws  []int
	bounds []int
	err    error
	failAt int
}

func (s *scriptedSource) Draw(_ context.Context, n int) (int, error) {
	s.bounds = append(s.bounds, n)
	if s.err != nil && len(s.bounds) > s.failAt {
		return 0, s.err
	}
	if len(s.draws) == 0 {
		return 0, errors.New("script exhausted")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v, nil
}

type seededSource struct {
	rng *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Draw(_ context.Context, n int) (int, error) {
	return s.rng.IntN(n), nil
}
