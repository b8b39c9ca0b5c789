package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/logger"
	"github.com/martinmr/iching/internal/infra/pseudorandom"
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase"
	"github.com/martinmr/iching/internal/usecase/analysis"
)

func (a *app) analyzeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze hexagrams and the relations between them",
	}
	c.PersistentFlags().StringP("format", "f", "", "output format: pretty|json|yaml (default pretty)")

	c.AddCommand(
		a.analyzeHexagramCmd(),
		a.shortestDistanceCmd(),
		a.kingWenCmd(),
		a.compareKingWenCmd(),
	)
	return c
}

func (a *app) analyzeHexagramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hexagram <ref>",
		Short: "Show trigrams, derived hexagrams and one-step neighbours",
		Long: "ref is a King Wen number (1-64), six 0/1 characters written bottom\n" +
			"line first (1 = yang), optionally prefixed with 0b. 0b101010 and\n" +
			"101010 both name #63.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			r, err := usecase.NewAnalyzeHexagram(a.catalog).Execute(args[0])
			if err != nil {
				return err
			}
			return p.Analysis(r)
		},
	}
}

func (a *app) shortestDistanceCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "shortest-distance <start> <end>",
		Short: "Find the shortest operation sequences between two hexagrams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			r, err := usecase.NewFindPath(a.catalog).Execute(args[0], args[1], all)
			if err != nil {
				return err
			}
			return p.Paths(r)
		},
	}
	c.Flags().BoolVar(&all, "all", false, "keep every shortest path, not only those changing the fewest lines")
	return c
}

func (a *app) kingWenCmd() *cobra.Command {
	var withPaths bool

	c := &cobra.Command{
		Use:   "king-wen",
		Short: "Measure the cost of walking the King Wen sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			uc := usecase.NewAnalyzeSequence(a.catalog, usecase.WithSequenceLogger(logger.L()))
			r, err := uc.KingWen(withPaths)
			if err != nil {
				return err
			}
			return p.Sequence("King Wen sequence", r)
		},
	}
	c.Flags().BoolVar(&withPaths, "paths", false, "print the paths of every transition")
	return c
}

func (a *app) compareKingWenCmd() *cobra.Command {
	var (
		samples int
		workers int
		seed    uint64
	)

	c := &cobra.Command{
		Use:   "compare-king-wen",
		Short: "Compare the King Wen sequence with the best of many random orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			if samples < 1 || workers < 1 {
				return &domain.OpError{
					Op:   "cli.compare_king_wen",
					Kind: domain.KindInvalidInput,
					Err:  fmt.Errorf("samples and workers must be positive: %w", domain.ErrInvalidInput),
				}
			}

			sources := shuffleSources(cmd.Flags().Changed("seed"), seed)
			uc := usecase.NewAnalyzeSequence(a.catalog, usecase.WithSequenceLogger(logger.L()))
			r, err := uc.Compare(cmd.Context(), samples, workers, sources)
			if err != nil {
				return err
			}
			return p.Comparison(r)
		},
	}
	c.Flags().IntVar(&samples, "samples", 1000, "number of random sequences")
	c.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers")
	c.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible shuffles; worker i uses seed+i")
	return c
}

// shuffleSources gives each worker its own pseudorandom source.
func shuffleSources(seeded bool, seed uint64) analysis.SourceFactory {
	log := logger.L()
	return func(worker int) (ports.RandomnessSource, error) {
		if seeded {
			return pseudorandom.New(seed+uint64(worker), pseudorandom.WithLogger(log)), nil
		}
		return pseudorandom.NewFromEntropy(pseudorandom.WithLogger(log))
	}
}
