package randomorg

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/httpclient"
)

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      string    `json:"id"`
}

type rpcParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Replacement bool   `json:"replacement"`
}

const (
	pathError        = "$.error.message"
	pathData         = "$.result.random.data"
	pathRequestsLeft = "$.result.requestsLeft"
	pathID           = "$.id"
)

// drawRPC calls generateIntegers on the JSON-RPC 4 API.
func (s *Source) drawRPC(ctx context.Context, n int) (int, error) {
	const op = "randomorg.draw_rpc"

	id := s.newID()
	req, err := httpclient.NewJSONPost(ctx, s.rpcEndpoint, rpcRequest{
		JSONRPC: "2.0",
		Method:  "generateIntegers",
		Params: rpcParams{
			APIKey:      s.apiKey,
			N:           1,
			Min:         0,
			Max:         n - 1,
			Replacement: true,
		},
		ID: id,
	})
	if err != nil {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, err)
	}

	body, err := s.do(ctx, req, op, s.rpcEndpoint, n)
	if err != nil {
		return 0, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, fmt.Errorf("%w: %v", errMalformed, err))
	}

	if msg, ok := lookup(doc, pathError); ok {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, fmt.Errorf("%w: %v", errRemote, msg))
	}
	if got, ok := lookup(doc, pathID); !ok || got != id {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, fmt.Errorf("%w: response id %v, want %s", errMalformed, got, id))
	}

	raw, ok := lookup(doc, pathData)
	data, isList := raw.([]any)
	if !ok || !isList || len(data) != 1 {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, fmt.Errorf("%w: %s is %v", errMalformed, pathData, raw))
	}
	f, isNum := data[0].(float64)
	if !isNum || f != math.Trunc(f) {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, fmt.Errorf("%w: non-integer value %v", errMalformed, data[0]))
	}

	if left, ok := lookup(doc, pathRequestsLeft); ok {
		s.log.Debug("randomorg.quota", "requests_left", left)
	}
	if f < 0 || f >= float64(n) {
		return 0, domain.SourceUnavailable(op, s.rpcEndpoint, fmt.Errorf("%w: got %v, want [0,%d)", errRange, f, n))
	}
	return int(f), nil
}

// lookup evaluates a JSONPath expression; missing keys and nulls are not found.
func lookup(doc any, expr string) (any, bool) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}
