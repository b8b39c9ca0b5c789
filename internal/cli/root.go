package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/martinmr/iching/internal/catalog"
	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/config"
	"github.com/martinmr/iching/internal/infra/configfinder"
	"github.com/martinmr/iching/internal/infra/logger"
	"github.com/martinmr/iching/internal/infra/report"
	"github.com/martinmr/iching/internal/ports"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	err := a.root().ExecuteContext(ctx)
	_ = a.close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	logLevel   string
	logFile    string
	noColor    bool
}

// app carries what PersistentPreRunE prepares for the command that runs.
type app struct {
	opts    globalOptions
	locator ports.ConfigLocator
	workdir func() (string, error)
	console io.Writer

	cfg     domain.Config
	cfgPath string
	catalog *catalog.Catalog
	cleanup func() error
}

func newApp() *app {
	return &app{
		locator: configfinder.NewFinder(),
		workdir: os.Getwd,
	}
}

func (a *app) root() *cobra.Command {
	var co castOptions

	cmd := &cobra.Command{
		Use:   "iching",
		Short: "I Ching divination and hexagram analysis",
		Long: "Casts I Ching readings with the yarrow-stalk or three-coin method and\n" +
			"analyzes the relations between the 64 hexagrams.\n\n" +
			"Without a subcommand a reading is cast.",
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCast(cmd, co)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.opts.configFile, "config", "", "config file (default: nearest "+configfinder.FileName+", then the user config dir)")
	pf.StringVar(&a.opts.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	pf.StringVar(&a.opts.logFile, "log-file", "", "append JSON logs to this file instead of stderr")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")

	addCastFlags(cmd.Flags(), &co)

	cmd.AddCommand(
		a.castCmd(),
		a.analyzeCmd(),
		a.listCmd(),
		a.browseCmd(),
		a.initCmd(),
		versionCmd(),
	)
	return cmd
}

// setup runs before every command: the catalog is verified first, then the
// configuration is merged and the logger installed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	a.catalog = cat

	wd, err := a.workdir()
	if err != nil {
		wd = ""
	}

	loaded, err := config.Load(config.Options{
		File:     a.opts.configFile,
		StartDir: wd,
		Locator:  a.locator,
		Flags:    boundFlags(cmd.Flags()),
	})
	if err != nil {
		return err
	}
	a.cfg = loaded.Config
	a.cfgPath = loaded.Path
	if a.opts.noColor {
		a.cfg.Output.Color = false
	}

	if err := a.setupLogger(cmd, a.cfg.Log.Level, a.cfg.Log.File); err != nil {
		return err
	}

	log := logger.L()
	log.Info("config.loaded",
		"path", a.cfgPath,
		"method", a.cfg.Reading.Method,
		"randomness", a.cfg.Reading.Randomness,
		"format", a.cfg.Output.Format,
	)
	log.Info("catalog.loaded", "entries", len(cat.Entries()))
	return nil
}

func (a *app) setupLogger(cmd *cobra.Command, level, file string) error {
	console := a.console
	if console == nil {
		console = cmd.ErrOrStderr()
	}
	cleanup, err := logger.Setup(logger.Config{
		Level:   level,
		File:    file,
		Console: console,
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	a.cleanup = cleanup
	return nil
}

func (a *app) close() error {
	if a.cleanup == nil {
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	return err
}

// boundFlags maps config keys onto the flags of the running command that
// override them. Flags a command does not define are skipped.
func boundFlags(fs *pflag.FlagSet) map[string]*pflag.Flag {
	keys := map[string]string{
		"reading.method":     "method",
		"reading.randomness": "randomness",
		"output.format":      "format",
		"log.level":          "log-level",
		"log.file":           "log-file",
	}
	out := make(map[string]*pflag.Flag, len(keys))
	for key, name := range keys {
		if f := fs.Lookup(name); f != nil {
			out[key] = f
		}
	}
	return out
}

func (a *app) printer(cmd *cobra.Command) (*report.Printer, error) {
	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return report.New(cmd.OutOrStdout(), format, a.cfg.Output.Color, a.catalog), nil
}
