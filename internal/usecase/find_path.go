package usecase

import (
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase/analysis"
)

type FindPath struct {
	catalog ports.HexagramCatalog
}

func NewFindPath(cat ports.HexagramCatalog) *FindPath {
	return &FindPath{catalog: cat}
}

// Execute searches every shortest path from start to end. Unless all is set
// only the paths changing the fewest lines are returned.
func (uc *FindPath) Execute(startRef, endRef string, all bool) (analysis.PathResult, error) {
	start, err := uc.catalog.Lookup(startRef)
	if err != nil {
		return analysis.PathResult{}, err
	}
	end, err := uc.catalog.Lookup(endRef)
	if err != nil {
		return analysis.PathResult{}, err
	}

	return analysis.PathResult{
		Start: start,
		End:   end,
		All:   all,
		Paths: analysis.ShortestPaths(start.Pattern, end.Pattern, all),
	}, nil
}
