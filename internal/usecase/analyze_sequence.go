package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase/analysis"
)

type AnalyzeSequence struct {
	sequencer *analysis.Sequencer
	log       *slog.Logger
}

type SequenceOption func(*AnalyzeSequence)

func WithSequenceLogger(l *slog.Logger) SequenceOption {
	return func(uc *AnalyzeSequence) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewAnalyzeSequence(cat ports.HexagramCatalog, opts ...SequenceOption) *AnalyzeSequence {
	uc := &AnalyzeSequence{
		sequencer: analysis.NewSequencer(cat),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// KingWen analyzes the traditional order. Transitions are kept only when
// withPaths is set.
func (uc *AnalyzeSequence) KingWen(withPaths bool) (analysis.SequenceReport, error) {
	r, err := uc.sequencer.Analyze(analysis.KingWen())
	if err != nil {
		return analysis.SequenceReport{}, err
	}
	if !withPaths {
		r.Transitions = nil
	}
	return r, nil
}

// Compare analyzes samples random shuffles in parallel and reports the best
// one next to the King Wen order.
func (uc *AnalyzeSequence) Compare(ctx context.Context, samples, workers int, sources analysis.SourceFactory) (analysis.Comparison, error) {
	start := time.Now()

	kw, err := uc.KingWen(false)
	if err != nil {
		return analysis.Comparison{}, err
	}

	best, err := uc.sequencer.MinRandom(ctx, samples, workers, sources)
	if err != nil {
		return analysis.Comparison{}, err
	}

	uc.log.Info("sequence.compared",
		"samples", samples,
		"workers", workers,
		"king_wen_ops", kw.TotalOps,
		"best_random_ops", best.TotalOps,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return analysis.Comparison{KingWen: kw, Random: best, Samples: samples}, nil
}
