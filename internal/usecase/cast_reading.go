package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase/cast"
)

// CastRequest describes one divination.
type CastRequest struct {
	Question string
	Method   domain.Method
}

// CastReading draws six lines from its source and assembles them into a
// reading. A reading is either complete or not produced at all.
type CastReading struct {
	source     ports.RandomnessSource
	randomness domain.Randomness
	catalog    ports.HexagramCatalog
	now        func() time.Time
	log        *slog.Logger
}

type CastOption func(*CastReading)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) CastOption {
	return func(uc *CastReading) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(l *slog.Logger) CastOption {
	return func(uc *CastReading) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewCastReading binds a use case to one randomness source. randomness names
// the variant the source implements and is copied into every reading.
func NewCastReading(src ports.RandomnessSource, randomness domain.Randomness, cat ports.HexagramCatalog, opts ...CastOption) *CastReading {
	uc := &CastReading{
		source:     src,
		randomness: randomness,
		catalog:    cat,
		now:        time.Now,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute casts a full reading. Any draw failure aborts the whole reading.
func (uc *CastReading) Execute(ctx context.Context, req CastRequest) (domain.Reading, error) {
	start := uc.now()

	lines, err := cast.Lines(ctx, req.Method, uc.source)
	if err != nil {
		uc.log.Warn("reading.failed",
			"method", req.Method,
			"randomness", uc.randomness,
			"error", err,
		)
		return domain.Reading{}, err
	}

	r, err := uc.CastLines(req, lines)
	if err != nil {
		return domain.Reading{}, err
	}

	uc.log.Info("reading.cast",
		"method", r.Method,
		"randomness", r.Randomness,
		"primary", r.PrimaryEntry.Number,
		"changing", len(r.ChangingLines),
		"duration_ms", uc.now().Sub(start).Milliseconds(),
	)
	return r, nil
}

// CastLines assembles a reading from already drawn lines. It is the pure half
// of Execute and is also used to interpret lines supplied by the user.
func (uc *CastReading) CastLines(req CastRequest, lines domain.Hexagram) (domain.Reading, error) {
	asm, err := domain.Assemble(lines)
	if err != nil {
		return domain.Reading{}, err
	}

	r := domain.Reading{
		Question:      strings.TrimSpace(req.Question),
		Method:        req.Method,
		Randomness:    uc.randomness,
		CastAt:        uc.now().UTC(),
		Primary:       asm.Primary,
		PrimaryEntry:  uc.catalog.ByPattern(asm.Primary.Pattern()),
		ChangingLines: asm.ChangingLines,
		Secondary:     asm.Secondary,
	}
	if asm.Secondary != nil {
		e := uc.catalog.ByPattern(asm.Secondary.Pattern())
		r.SecondaryEntry = &e
	}
	return r, nil
}
