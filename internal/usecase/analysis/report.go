package analysis

import (
	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// Reachable is a hexagram one operation away.
type Reachable struct {
	Operation Operation    `json:"operation" yaml:"operation"`
	Entry     domain.Entry `json:"entry" yaml:"entry"`
}

// Report is the relational analysis of one hexagram.
type Report struct {
	Entry        domain.Entry       `json:"entry" yaml:"entry"`
	Lower        domain.TrigramInfo `json:"lower" yaml:"lower"`
	Upper        domain.TrigramInfo `json:"upper" yaml:"upper"`
	NuclearLower domain.TrigramInfo `json:"nuclear_lower" yaml:"nuclear_lower"`
	NuclearUpper domain.TrigramInfo `json:"nuclear_upper" yaml:"nuclear_upper"`
	Opposite     domain.Entry       `json:"opposite" yaml:"opposite"`
	Inverse      domain.Entry       `json:"inverse" yaml:"inverse"`
	Nuclear      domain.Entry       `json:"nuclear" yaml:"nuclear"`
	NuclearRoot  domain.Entry       `json:"nuclear_root" yaml:"nuclear_root"`
	Reachable    []Reachable        `json:"reachable" yaml:"reachable"`
}

// Analyze builds the relational report of e. Operations that leave the
// hexagram unchanged are omitted from Reachable.
func Analyze(cat ports.HexagramCatalog, e domain.Entry) Report {
	p := e.Pattern
	r := Report{
		Entry:        e,
		Lower:        cat.Trigram(p.Lower()),
		Upper:        cat.Trigram(p.Upper()),
		NuclearLower: cat.Trigram(p.NuclearLower()),
		NuclearUpper: cat.Trigram(p.NuclearUpper()),
		Opposite:     cat.ByPattern(p.Opposite()),
		Inverse:      cat.ByPattern(p.Inverse()),
		Nuclear:      cat.ByPattern(p.Nuclear()),
		NuclearRoot:  cat.ByPattern(p.NuclearRoot()),
		Reachable:    make([]Reachable, 0, len(Operations)),
	}

	for _, op := range Operations {
		q := op.Apply(p)
		if q == p {
			continue
		}
		r.Reachable = append(r.Reachable, Reachable{Operation: op, Entry: cat.ByPattern(q)})
	}
	return r
}
