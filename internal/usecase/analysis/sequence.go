package analysis

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// Transition holds the retained shortest paths between two consecutive
// hexagrams of a sequence.
type Transition struct {
	From  int    `json:"from" yaml:"from"`
	To    int    `json:"to" yaml:"to"`
	Paths []Path `json:"paths" yaml:"paths"`
}

// SequenceReport summarizes the cost of walking a sequence of hexagrams.
type SequenceReport struct {
	Sequence         []int        `json:"sequence" yaml:"sequence"`
	Transitions      []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	TotalOps         int          `json:"total_ops" yaml:"total_ops"`
	TotalLineChanges int          `json:"total_line_changes" yaml:"total_line_changes"`
	TotalPaths       *big.Int     `json:"total_paths" yaml:"total_paths"`
}

// ChangesPerOp is the mean number of lines changed by one operation.
func (r SequenceReport) ChangesPerOp() float64 {
	if r.TotalOps == 0 {
		return 0
	}
	return float64(r.TotalLineChanges) / float64(r.TotalOps)
}

// KingWen is the traditional order, 1 through 64.
func KingWen() []int {
	out := make([]int, domain.PatternCount)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Shuffle permutes seq in place with Fisher-Yates, drawing from src.
func Shuffle(ctx context.Context, src ports.RandomnessSource, seq []int) error {
	for i := len(seq) - 1; i > 0; i-- {
		j, err := src.Draw(ctx, i+1)
		if err != nil {
			return err
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
	return nil
}

type patternPair struct {
	from, to domain.Pattern
}

// Sequencer analyzes sequences of King Wen numbers. Searches are memoized
// per pair, so one Sequencer is meant to be reused across many sequences.
// It is safe for concurrent use.
type Sequencer struct {
	catalog ports.HexagramCatalog

	mu   sync.RWMutex
	memo map[patternPair][]Path
}

func NewSequencer(cat ports.HexagramCatalog) *Sequencer {
	return &Sequencer{
		catalog: cat,
		memo:    make(map[patternPair][]Path),
	}
}

// Analyze walks seq pair by pair. Every number must be in 1..64.
func (s *Sequencer) Analyze(seq []int) (SequenceReport, error) {
	entries := make([]domain.Entry, len(seq))
	for i, n := range seq {
		e, err := s.catalog.ByNumber(n)
		if err != nil {
			return SequenceReport{}, err
		}
		entries[i] = e
	}

	r := SequenceReport{
		Sequence:   append([]int(nil), seq...),
		TotalPaths: big.NewInt(1),
	}
	if len(entries) > 1 {
		r.Transitions = make([]Transition, 0, len(entries)-1)
	}

	for i := 1; i < len(entries); i++ {
		paths := s.paths(entries[i-1].Pattern, entries[i].Pattern)
		r.Transitions = append(r.Transitions, Transition{
			From:  entries[i-1].Number,
			To:    entries[i].Number,
			Paths: paths,
		})
		r.TotalOps += paths[0].Ops()
		r.TotalLineChanges += paths[0].LineChanges()
		r.TotalPaths.Mul(r.TotalPaths, big.NewInt(int64(len(paths))))
	}
	return r, nil
}

func (s *Sequencer) paths(from, to domain.Pattern) []Path {
	key := patternPair{from: from, to: to}

	s.mu.RLock()
	p, ok := s.memo[key]
	s.mu.RUnlock()
	if ok {
		return p
	}

	p = ShortestPaths(from, to, false)

	s.mu.Lock()
	s.memo[key] = p
	s.mu.Unlock()
	return p
}

// SourceFactory hands each worker its own randomness source.
type SourceFactory func(worker int) (ports.RandomnessSource, error)

// MinRandom analyzes samples shuffles of the King Wen order across workers
// goroutines and returns the one needing the fewest operations. Ties go to
// the earliest sample. Transitions are dropped from the result.
func (s *Sequencer) MinRandom(ctx context.Context, samples, workers int, sources SourceFactory) (SequenceReport, error) {
	if samples < 1 {
		return SequenceReport{}, &domain.OpError{
			Op:   "analysis.min_random",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("samples must be positive, got %d: %w", samples, domain.ErrInvalidInput),
		}
	}
	workers = max(1, min(workers, samples))

	type best struct {
		sample int
		report SequenceReport
	}
	results := make([]*best, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			src, err := sources(w)
			if err != nil {
				return err
			}
			for i := w; i < samples; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				seq := KingWen()
				if err := Shuffle(gctx, src, seq); err != nil {
					return err
				}
				r, err := s.Analyze(seq)
				if err != nil {
					return err
				}
				if results[w] == nil || r.TotalOps < results[w].report.TotalOps {
					r.Transitions = nil
					results[w] = &best{sample: i, report: r}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SequenceReport{}, err
	}

	var winner *best
	for _, b := range results {
		if b == nil {
			continue
		}
		if winner == nil ||
			b.report.TotalOps < winner.report.TotalOps ||
			(b.report.TotalOps == winner.report.TotalOps && b.sample < winner.sample) {
			winner = b
		}
	}
	return winner.report, nil
}

// Comparison sets the King Wen order against the cheapest random shuffle found.
type Comparison struct {
	KingWen SequenceReport `json:"king_wen" yaml:"king_wen"`
	Random  SequenceReport `json:"random" yaml:"random"`
	Samples int            `json:"samples" yaml:"samples"`
}
