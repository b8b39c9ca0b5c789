package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/logger"
	"github.com/martinmr/iching/internal/infra/pseudorandom"
	"github.com/martinmr/iching/internal/infra/randomorg"
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase"
)

type castOptions struct {
	method     string
	randomness string
	question   string
	seed       uint64
	lines      string
	format     string
}

func addCastFlags(fs *pflag.FlagSet, o *castOptions) {
	fs.StringVarP(&o.method, "method", "m", "", "line method: yarrow-stalks|coin (default yarrow-stalks)")
	fs.StringVarP(&o.randomness, "randomness", "r", "", "randomness source: random|pseudorandom (default random)")
	fs.StringVarP(&o.question, "question", "q", "", "question to record with the reading")
	fs.Uint64Var(&o.seed, "seed", 0, "seed the pseudorandom source (implies --randomness pseudorandom)")
	fs.StringVar(&o.lines, "lines", "", "interpret six given line values, bottom first (e.g. 7,8,9,6,7,7)")
	fs.StringVarP(&o.format, "format", "f", "", "output format: pretty|json|yaml (default pretty)")
}

func (a *app) castCmd() *cobra.Command {
	var o castOptions

	c := &cobra.Command{
		Use:   "cast",
		Short: "Cast a reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCast(cmd, o)
		},
	}
	addCastFlags(c.Flags(), &o)
	return c
}

func (a *app) runCast(cmd *cobra.Command, o castOptions) error {
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}
	req := usecase.CastRequest{
		Question: o.question,
		Method:   a.cfg.Reading.Method,
	}

	if cmd.Flags().Changed("lines") {
		lines, err := parseLines(o.lines)
		if err != nil {
			return err
		}
		uc := usecase.NewCastReading(nil, "", a.catalog, usecase.WithLogger(logger.L()))
		r, err := uc.CastLines(req, lines)
		if err != nil {
			return err
		}
		return p.Reading(r)
	}

	randomness := a.cfg.Reading.Randomness
	seeded := cmd.Flags().Changed("seed")
	if seeded {
		if cmd.Flags().Changed("randomness") && randomness != domain.RandomnessLocal {
			return &domain.OpError{
				Op:   "cli.cast",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("--seed needs the pseudorandom source, got %q: %w", randomness, domain.ErrInvalidInput),
			}
		}
		randomness = domain.RandomnessLocal
	}

	src, err := a.newSource(randomness, seeded, o.seed)
	if err != nil {
		return err
	}

	uc := usecase.NewCastReading(src, randomness, a.catalog, usecase.WithLogger(logger.L()))
	r, err := uc.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}
	return p.Reading(r)
}

// newSource builds the configured randomness source. The remote source never
// falls back to the local one.
func (a *app) newSource(r domain.Randomness, seeded bool, seed uint64) (ports.RandomnessSource, error) {
	log := logger.L()
	switch r {
	case domain.RandomnessRemote:
		src := randomorg.New(a.cfg.Remote, randomorg.WithLogger(log))
		log.Debug("source.selected", "randomness", r, "mode", src.Mode())
		return src, nil
	case domain.RandomnessLocal:
		if seeded {
			log.Debug("source.selected", "randomness", r, "seed", seed)
			return pseudorandom.New(seed, pseudorandom.WithLogger(log)), nil
		}
		src, err := pseudorandom.NewFromEntropy(pseudorandom.WithLogger(log))
		if err != nil {
			return nil, err
		}
		log.Debug("source.selected", "randomness", r, "seed", src.Seed())
		return src, nil
	}
	return nil, &domain.OpError{
		Op:   "cli.source",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("unsupported randomness %q: %w", r, domain.ErrInvalidConfig),
	}
}

// parseLines reads six comma or space separated line values, bottom first.
func parseLines(s string) (domain.Hexagram, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != len(domain.Hexagram{}) {
		return domain.Hexagram{}, &domain.OpError{
			Op:   "cli.parse_lines",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("want 6 line values, got %d in %q: %w", len(fields), s, domain.ErrInvalidInput),
		}
	}

	var h domain.Hexagram
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return domain.Hexagram{}, &domain.OpError{
				Op:   "cli.parse_lines",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("line %d: %q is not a number: %w", i+1, f, domain.ErrInvalidInput),
			}
		}
		l, err := domain.ParseLine(v)
		if err != nil {
			return domain.Hexagram{}, err
		}
		h[i] = l
	}
	return h, nil
}
