package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "catalog.by_number",
		Kind: KindOutOfRange,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindOutOfRange {
		t.Fatalf("expected kind %s", KindOutOfRange)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: "/tmp/x.yaml", Err: ErrInvalidConfig}
	msg := err.Error()
	for _, want := range []string{"config.load", "invalid_config", "/tmp/x.yaml", "invalid config"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}

	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("expected nil OpError to print <nil>")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Kind: KindInvalidConfig}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected plain errors not to match")
	}
}

func TestSourceUnavailableKeepsCause(t *testing.T) {
	err := SourceUnavailable("randomorg.draw", "https://example", context.DeadlineExceeded)

	if !IsKind(err, KindSourceUnavailable) {
		t.Fatalf("expected source_unavailable kind, got %v", err)
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable in chain")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause in chain")
	}
}
