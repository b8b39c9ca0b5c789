// Package pseudorandom is the local RandomnessSource: a PCG generator seeded
// from the operating system's entropy pool or from an explicit seed.
package pseudorandom

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// streamSalt derives the PCG stream from the seed.
const streamSalt = 0x9e3779b97f4a7c15

type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
	log  *slog.Logger
}

var _ ports.RandomnessSource = (*Source)(nil)

type Option func(*Source)

func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a source that replays the same draws for the same seed.
func New(seed uint64, opts ...Option) *Source {
	s := &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^streamSalt)),
		seed: seed,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromEntropy seeds a source from crypto/rand.
func NewFromEntropy(opts ...Option) (*Source, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed, opts...), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Seed reports the seed the source was built with, so a reading can be replayed.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Draw returns an integer uniform in [0, n). It is safe for concurrent use.
func (s *Source) Draw(ctx context.Context, n int) (int, error) {
	if n < 1 {
		return 0, &domain.OpError{
			Op:   "pseudorandom.draw",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("bound must be positive, got %d: %w", n, domain.ErrInvalidInput),
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	v := s.rng.IntN(n)
	s.mu.Unlock()

	s.log.Debug("source.draw", "source", domain.RandomnessLocal, "n", n, "value", v)
	return v, nil
}
