// Package randomorg is the remote RandomnessSource backed by random.org.
//
// Without an API key the keyless plain-text HTTP API is used; with a key the
// JSON-RPC 4 API is used. Every failure is reported as
// domain.ErrSourceUnavailable. The source never retries and never falls back
// to a local generator.
package randomorg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/httpclient"
	"github.com/martinmr/iching/internal/ports"
)

var (
	errStatus    = errors.New("unexpected http status")
	errMalformed = errors.New("malformed response")
	errRange     = errors.New("value out of range")
	errRemote    = errors.New("service error")
)

type Source struct {
	exec        *httpclient.Executor
	endpoint    string
	rpcEndpoint string
	apiKey      string
	newID       func() string
	log         *slog.Logger
}

var _ ports.RandomnessSource = (*Source)(nil)

type Option func(*Source)

func WithExecutor(e *httpclient.Executor) Option {
	return func(s *Source) {
		if e != nil {
			s.exec = e
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRequestID overrides the JSON-RPC request id generator.
func WithRequestID(f func() string) Option {
	return func(s *Source) {
		if f != nil {
			s.newID = f
		}
	}
}

// New builds a source from the remote section of the configuration.
func New(cfg domain.RemoteConfig, opts ...Option) *Source {
	hc := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}
	if cfg.UserAgent != "" {
		hc.UserAgent = cfg.UserAgent
	}

	s := &Source{
		exec: httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(hc)),
			httpclient.WithTimeout(hc.Timeout),
		),
		endpoint:    cfg.Endpoint,
		rpcEndpoint: cfg.RPCEndpoint,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		newID:       uuid.NewString,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode names the wire protocol in use.
func (s *Source) Mode() string {
	if s.apiKey != "" {
		return "json-rpc"
	}
	return "plain"
}

// Draw fetches one integer uniform in [0, n).
func (s *Source) Draw(ctx context.Context, n int) (int, error) {
	if n < 1 {
		return 0, &domain.OpError{
			Op:   "randomorg.draw",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("bound must be positive, got %d: %w", n, domain.ErrInvalidInput),
		}
	}
	if n == 1 {
		return 0, nil
	}

	if s.apiKey != "" {
		return s.drawRPC(ctx, n)
	}
	return s.drawPlain(ctx, n)
}

// do runs req and returns the body of a 2xx response.
func (s *Source) do(ctx context.Context, req *http.Request, op, endpoint string, n int) ([]byte, error) {
	resp, err := s.exec.Do(ctx, req)
	s.log.Debug("randomorg.request",
		"mode", s.Mode(),
		"n", n,
		"status", resp.Status,
		"duration_ms", resp.Duration.Milliseconds(),
	)
	if err != nil {
		return nil, domain.SourceUnavailable(op, endpoint, err)
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, domain.SourceUnavailable(op, endpoint,
			fmt.Errorf("%w %d: %s", errStatus, resp.Status, snippet(resp.BodyBytes)))
	}
	return resp.BodyBytes, nil
}

func checkRange(v, n int, op, endpoint string) (int, error) {
	if v < 0 || v >= n {
		return 0, domain.SourceUnavailable(op, endpoint, fmt.Errorf("%w: got %d, want [0,%d)", errRange, v, n))
	}
	return v, nil
}

// snippet trims a response body for inclusion in an error message.
func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	return s
}
