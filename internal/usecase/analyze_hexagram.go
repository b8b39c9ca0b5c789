package usecase

import (
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase/analysis"
)

type AnalyzeHexagram struct {
	catalog ports.HexagramCatalog
}

func NewAnalyzeHexagram(cat ports.HexagramCatalog) *AnalyzeHexagram {
	return &AnalyzeHexagram{catalog: cat}
}

// Execute resolves ref and builds its relational report.
func (uc *AnalyzeHexagram) Execute(ref string) (analysis.Report, error) {
	e, err := uc.catalog.Lookup(ref)
	if err != nil {
		return analysis.Report{}, err
	}
	return analysis.Analyze(uc.catalog, e), nil
}
