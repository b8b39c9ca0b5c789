// Package config merges defaults, the config file, ICHING_* environment
// variables and command line flags into a validated domain.Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "ICHING"

// Options controls where configuration is read from.
type Options struct {
	// File is an explicit config path; it must exist when set.
	File string
	// StartDir and Locator find a config file when File is empty. A missing
	// file is not an error.
	StartDir string
	Locator  ports.ConfigLocator
	// Flags maps config keys ("reading.method") to flags that override them
	// when set on the command line.
	Flags map[string]*pflag.Flag
}

// Loaded is the merged configuration and the file it came from, if any.
type Loaded struct {
	Config domain.Config
	Path   string
}

// Load builds the configuration. Precedence, lowest first: defaults, config
// file, environment, flags.
func Load(opts Options) (Loaded, error) {
	path, err := resolvePath(opts)
	if err != nil {
		return Loaded{}, err
	}

	v := viper.New()
	setDefaults(v, domain.DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := probe(path); err != nil {
			return Loaded{}, err
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Loaded{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	}

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return Loaded{}, &domain.OpError{
				Op:   "config.bind_flag",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("bind %s: %w", key, err),
			}
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Loaded{}, &domain.OpError{
			Op:   "config.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}

	cfg, err := mapConfig(path, fc)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{Config: cfg, Path: path}, nil
}

func resolvePath(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindNotFound,
				Path: opts.File,
				Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
			}
		}
		return opts.File, nil
	}

	if opts.Locator == nil || opts.StartDir == "" {
		return "", nil
	}
	path, err := opts.Locator.FindConfig(opts.StartDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

// probe parses the file with yaml.v3 first: its errors carry line numbers,
// and unknown keys are rejected before viper would drop them.
func probe(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			err = fmt.Errorf("top level must be a mapping: %s", strings.Join(te.Errors, "; "))
		}
		return &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}
	return checkKeys(path, doc)
}

func setDefaults(v *viper.Viper, d domain.Config) {
	v.SetDefault("reading.method", string(d.Reading.Method))
	v.SetDefault("reading.randomness", string(d.Reading.Randomness))
	v.SetDefault("remote.endpoint", d.Remote.Endpoint)
	v.SetDefault("remote.rpc_endpoint", d.Remote.RPCEndpoint)
	v.SetDefault("remote.api_key", d.Remote.APIKey)
	v.SetDefault("remote.timeout", d.Remote.Timeout)
	v.SetDefault("remote.user_agent", d.Remote.UserAgent)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}
