package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/configinit"
	"github.com/martinmr/iching/internal/infra/logger"
	"github.com/martinmr/iching/internal/usecase"
)

type userPather interface {
	UserPath() (string, error)
}

func (a *app) initCmd() *cobra.Command {
	var (
		force bool
		user  bool
	)

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: "Writes a commented config file with the default settings to ./.iching.yaml,\n" +
			"or with --user to the per-user config location.",
		Args: cobra.NoArgs,
		// A broken config file must not prevent writing a new one.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd, a.opts.logLevel, a.opts.logFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ini := configinit.NewInitializer()
			dir, err := a.workdir()
			if err != nil {
				return err
			}

			if user {
				up, ok := a.locator.(userPather)
				if !ok {
					return &domain.OpError{
						Op:   "cli.init",
						Kind: domain.KindNotFound,
						Err:  fmt.Errorf("no user config location: %w", domain.ErrNotFound),
					}
				}
				p, err := up.UserPath()
				if err != nil {
					return err
				}
				dir, ini.FileName = filepath.Split(p)
			}

			path, err := usecase.NewInitConfig(ini, logger.L()).Execute(dir, force)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
	c.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	c.Flags().BoolVar(&user, "user", false, "write the per-user config file instead")
	return c
}
