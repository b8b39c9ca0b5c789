package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSourceUnavailable = errors.New("randomness source unavailable")
	ErrOutOfRange        = errors.New("hexagram number out of range")
	ErrCatalogInvariant  = errors.New("hexagram catalog invariant violated")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindSourceUnavailable ErrorKind = "source_unavailable"
	KindOutOfRange        ErrorKind = "out_of_range"
	KindCatalogInvariant  ErrorKind = "catalog_invariant"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: config file or endpoint involved
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// SourceUnavailable builds the error every remote randomness failure is
// reported as. The cause stays reachable through errors.Is/As.
func SourceUnavailable(op, endpoint string, cause error) error {
	err := ErrSourceUnavailable
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrSourceUnavailable, cause)
	}
	return &OpError{
		Op:   op,
		Kind: KindSourceUnavailable,
		Path: endpoint,
		Err:  err,
	}
}
