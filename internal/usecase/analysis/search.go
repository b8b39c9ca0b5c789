package analysis

import (
	"math"

	"github.com/martinmr/iching/internal/domain"
)

// Step is one hexagram on a path and the operation that produced it.
type Step struct {
	Operation Operation      `json:"operation" yaml:"operation"`
	Pattern   domain.Pattern `json:"pattern" yaml:"pattern"`
}

// Path starts with a NoOp step holding the start pattern.
type Path []Step

// Ops is the number of operations applied along the path.
func (p Path) Ops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// LineChanges sums the lines that differ between consecutive steps.
func (p Path) LineChanges() int {
	n := 0
	for i := 1; i < len(p); i++ {
		n += p[i].Pattern.Distance(p[i-1].Pattern)
	}
	return n
}

func (p Path) contains(q domain.Pattern) bool {
	for _, s := range p {
		if s.Pattern == q {
			return true
		}
	}
	return false
}

// ShortestPaths returns every path of minimal length from start to end.
// Unless all is set, only the paths with the fewest line changes are kept.
// A path never revisits a hexagram. start == end yields the trivial path.
func ShortestPaths(start, end domain.Pattern, all bool) []Path {
	if start == end {
		return []Path{{{Operation: NoOp, Pattern: start}}}
	}

	queue := []Path{{{Operation: NoOp, Pattern: start}}}
	var found []Path

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if len(found) > 0 && len(path) >= len(found[0]) {
			break
		}

		cur := path[len(path)-1].Pattern
		for _, op := range Operations {
			next := op.Apply(cur)
			if path.contains(next) {
				continue
			}

			extended := make(Path, len(path), len(path)+1)
			copy(extended, path)
			extended = append(extended, Step{Operation: op, Pattern: next})

			if next == end {
				found = append(found, extended)
			} else {
				queue = append(queue, extended)
			}
		}
	}

	if all {
		return found
	}
	return fewestLineChanges(found)
}

func fewestLineChanges(paths []Path) []Path {
	best := math.MaxInt
	for _, p := range paths {
		best = min(best, p.LineChanges())
	}

	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		if p.LineChanges() == best {
			out = append(out, p)
		}
	}
	return out
}

// PathResult lists the shortest transformation paths between two hexagrams.
type PathResult struct {
	Start domain.Entry `json:"start" yaml:"start"`
	End   domain.Entry `json:"end" yaml:"end"`
	All   bool         `json:"all" yaml:"all"`
	Paths []Path       `json:"paths" yaml:"paths"`
}
