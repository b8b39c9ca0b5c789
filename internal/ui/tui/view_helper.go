package tui

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/report"
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase/analysis"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderAnalysis(st report.Styles, cat ports.HexagramCatalog, e domain.Entry) string {
	var buf bytes.Buffer
	if err := report.NewStyled(&buf, st, cat).Analysis(analysis.Analyze(cat, e)); err != nil {
		return fmt.Sprintf("render failed: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderReading(st report.Styles, cat ports.HexagramCatalog, r domain.Reading) string {
	var buf bytes.Buffer
	if err := report.NewStyled(&buf, st, cat).Reading(r); err != nil {
		return fmt.Sprintf("render failed: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}
