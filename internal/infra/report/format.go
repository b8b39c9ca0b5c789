// Package report renders readings and analyses for the terminal (pretty) or
// for other programs (json, yaml).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/martinmr/iching/internal/domain"
)

type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPretty, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatPretty, nil
	}
	return "", &domain.OpError{
		Op:   "report.parse_format",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("unsupported format %q (expected pretty|json|yaml): %w", s, domain.ErrInvalidInput),
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
