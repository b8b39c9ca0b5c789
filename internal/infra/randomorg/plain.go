package randomorg

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/httpclient"
)

// drawPlain uses GET /integers/ of the keyless API. Errors come back as
// "Error: ..." text, usually with a 503 status.
func (s *Source) drawPlain(ctx context.Context, n int) (int, error) {
	const op = "randomorg.draw_plain"

	q := url.Values{}
	q.Set("num", "1")
	q.Set("min", "0")
	q.Set("max", strconv.Itoa(n-1))
	q.Set("col", "1")
	q.Set("base", "10")
	q.Set("format", "plain")
	q.Set("rnd", "new")

	req, err := httpclient.NewGet(ctx, s.endpoint, "integers/", q)
	if err != nil {
		return 0, domain.SourceUnavailable(op, s.endpoint, err)
	}

	body, err := s.do(ctx, req, op, s.endpoint, n)
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "Error:") {
		return 0, domain.SourceUnavailable(op, s.endpoint, fmt.Errorf("%w: %s", errRemote, text))
	}

	fields := strings.Fields(text)
	if len(fields) != 1 {
		return 0, domain.SourceUnavailable(op, s.endpoint,
			fmt.Errorf("%w: want 1 integer, got %d fields", errMalformed, len(fields)))
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, domain.SourceUnavailable(op, s.endpoint, fmt.Errorf("%w: %q", errMalformed, fields[0]))
	}
	return checkRange(v, n, op, s.endpoint)
}
