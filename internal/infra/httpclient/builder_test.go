package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/martinmr/iching/internal/domain"
)

func TestNewGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", r.Method)
		}
		if r.URL.Path != "/integers/" {
			t.Errorf("expected path /integers/, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("max") != "39" {
			t.Errorf("expected max=39, got %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := NewGet(context.Background(), server.URL+"/", "integers/", url.Values{"max": {"39"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()
}

func TestNewJSONPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected content-type json, got %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		if err := json.Unmarshal(body, &decoded); err != nil {
			t.Errorf("expected valid json body: %v", err)
		}
		if decoded["method"] != "generateIntegers" {
			t.Errorf("unexpected payload %s", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := NewJSONPost(context.Background(), server.URL, map[string]any{"method": "generateIntegers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()
}

func TestBuildersRejectBadEndpoints(t *testing.T) {
	cases := []string{"", "   ", "not a url", "/relative/only"}
	for _, base := range cases {
		if _, err := NewGet(context.Background(), base, "integers/", nil); !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("NewGet(%q): expected invalid_config, got %v", base, err)
		}
	}

	if _, err := NewJSONPost(context.Background(), "", nil); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("NewJSONPost: expected invalid_config, got %v", err)
	}
	if _, err := NewJSONPost(context.Background(), "http://x", make(chan int)); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("NewJSONPost: expected invalid_config for unencodable payload, got %v", err)
	}
}
