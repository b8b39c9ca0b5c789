package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/martinmr/iching/internal/domain"
)

type stubLocator struct {
	path string
	err  error
}

func (s stubLocator) FindConfig(string) (string, error) { return s.path, s.err }

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	got, err := Load(Options{
		StartDir: t.TempDir(),
		Locator:  stubLocator{err: &domain.OpError{Op: "test", Kind: domain.KindNotFound, Err: domain.ErrNotFound}},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Path != "" {
		t.Fatalf("expected no config path, got %s", got.Path)
	}
	if got.Config != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", got.Config)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join("testdata", "full.yaml")
	got, err := Load(Options{File: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := got.Config
	if got.Path != path {
		t.Fatalf("path = %s", got.Path)
	}
	if cfg.Reading.Method != domain.MethodCoin || cfg.Reading.Randomness != domain.RandomnessLocal {
		t.Fatalf("reading = %+v", cfg.Reading)
	}
	if cfg.Remote.Endpoint != "https://random.example.org" || cfg.Remote.Timeout != 3*time.Second {
		t.Fatalf("remote = %+v", cfg.Remote)
	}
	// Untouched keys keep their defaults.
	if cfg.Remote.RPCEndpoint != domain.DefaultConfig().Remote.RPCEndpoint {
		t.Fatalf("rpc endpoint = %s", cfg.Remote.RPCEndpoint)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log = %+v", cfg.Log)
	}
}

func TestLoad_LocatedFile(t *testing.T) {
	path := filepath.Join("testdata", "full.yaml")
	got, err := Load(Options{StartDir: ".", Locator: stubLocator{path: path}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Path != path || got.Config.Reading.Method != domain.MethodCoin {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("ICHING_READING_METHOD", "yarrow-stalks")
	t.Setenv("ICHING_REMOTE_API_KEY", "  secret  ")
	t.Setenv("ICHING_REMOTE_TIMEOUT", "750ms")

	got, err := Load(Options{File: filepath.Join("testdata", "full.yaml")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Config.Reading.Method != domain.MethodYarrowStalks {
		t.Fatalf("method = %s", got.Config.Reading.Method)
	}
	if got.Config.Remote.APIKey != "secret" {
		t.Fatalf("api key = %q", got.Config.Remote.APIKey)
	}
	if got.Config.Remote.Timeout != 750*time.Millisecond {
		t.Fatalf("timeout = %s", got.Config.Remote.Timeout)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ICHING_OUTPUT_FORMAT", "yaml")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "pretty", "")
	fs.String("method", "yarrow-stalks", "")
	if err := fs.Parse([]string{"--format", "json"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	got, err := Load(Options{Flags: map[string]*pflag.Flag{
		"output.format":  fs.Lookup("format"),
		"reading.method": fs.Lookup("method"),
	}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Config.Output.Format != "json" {
		t.Fatalf("format = %s, want json", got.Config.Output.Format)
	}
	// An unchanged flag does not mask the default.
	if got.Config.Reading.Method != domain.MethodYarrowStalks {
		t.Fatalf("method = %s", got.Config.Reading.Method)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		file  string
		field string
	}{
		{"unknown_key.yaml", "reading.metod"},
		{"unknown_section.yaml", "readings"},
		{"bad_method.yaml", "reading.method"},
		{"bad_timeout.yaml", "remote.timeout"},
		{"not_mapping.yaml", "mapping"},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join("testdata", tc.file)
			_, err := Load(Options{File: path})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig in chain, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected %q in error, got %v", tc.field, err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("expected path in error, got %v", err)
			}
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ICHING_OUTPUT_FORMAT", "xml")
	_, err := Load(Options{})
	if !domain.IsKind(err, domain.KindInvalidConfig) || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected invalid output.format, got %v", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.yaml")})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoad_LocatorFailure(t *testing.T) {
	boom := &domain.OpError{Op: "test", Kind: domain.KindInvalidConfig, Err: errors.New("boom")}
	_, err := Load(Options{StartDir: ".", Locator: stubLocator{err: boom}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected locator error, got %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".iching.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(Options{File: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Config != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", got.Config)
	}
}
