package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/logger"
	"github.com/martinmr/iching/internal/infra/pseudorandom"
	"github.com/martinmr/iching/internal/ui/tui"
	"github.com/martinmr/iching/internal/usecase"
)

func (a *app) listCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "List the 64 hexagrams in King Wen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.Catalog(a.catalog.Entries())
		},
	}
	c.Flags().StringP("format", "f", "", "output format: pretty|json|yaml (default pretty)")
	return c
}

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the hexagrams interactively (casts use a local pseudorandom source)",
		Long: "Opens a terminal browser over the 64 hexagrams.\n\n" +
			"Readings cast from the browser always draw from a local pseudorandom\n" +
			"source, whatever reading.randomness says, so the screen never waits on\n" +
			"the network. The configured method (yarrow or coins) is still used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return &domain.OpError{
					Op:   "cli.browse",
					Kind: domain.KindInvalidInput,
					Err:  fmt.Errorf("browse needs an interactive terminal: %w", domain.ErrInvalidInput),
				}
			}

			log := logger.L()
			src, err := pseudorandom.NewFromEntropy(pseudorandom.WithLogger(log))
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Catalog: a.catalog,
				Caster:  usecase.NewCastReading(src, domain.RandomnessLocal, a.catalog, usecase.WithLogger(log)),
				Method:  a.cfg.Reading.Method,
				Logger:  log,
			})
		},
	}
}
