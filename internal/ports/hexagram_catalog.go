package ports

import "github.com/martinmr/iching/internal/domain"

// HexagramCatalog resolves hexagram identities.
type HexagramCatalog interface {
	ByPattern(p domain.Pattern) domain.Entry
	ByNumber(n int) (domain.Entry, error)
	// Lookup accepts a King Wen number or a line pattern as typed by a user.
	Lookup(ref string) (domain.Entry, error)
	Trigram(t domain.Trigram) domain.TrigramInfo
	Entries() []domain.Entry
}
