package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/martinmr/iching/internal/domain"
)

// NewGet builds a GET request for base joined with path and the given query.
func NewGet(ctx context.Context, base, path string, query url.Values) (*http.Request, error) {
	u, err := joinURL(base, path)
	if err != nil {
		return nil, err
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, buildError(base, err)
	}
	req.Header.Set("Accept", "text/plain")
	return req, nil
}

// NewJSONPost builds a POST request whose body is payload encoded as JSON.
func NewJSONPost(ctx context.Context, endpoint string, payload any) (*http.Request, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, buildError(endpoint, domain.ErrInvalidConfig)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, buildError(endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, buildError(endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func joinURL(base, path string) (*url.URL, error) {
	if strings.TrimSpace(base) == "" {
		return nil, buildError(base, domain.ErrInvalidConfig)
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, buildError(base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, buildError(base, domain.ErrInvalidConfig)
	}
	return u.JoinPath(path), nil
}

func buildError(endpoint string, err error) error {
	if !errors.Is(err, domain.ErrInvalidConfig) {
		err = fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return &domain.OpError{
		Op:   "httpclient.build",
		Kind: domain.KindInvalidConfig,
		Path: endpoint,
		Err:  err,
	}
}
