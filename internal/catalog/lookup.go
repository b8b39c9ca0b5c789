package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/martinmr/iching/internal/domain"
)

// Lookup resolves a user supplied hexagram reference: a King Wen number
// (1..64), or six '0'/'1' characters listing lines bottom to top with an
// optional 0b prefix. Any other integer, signed or not, is out of range.
func (c *Catalog) Lookup(ref string) (domain.Entry, error) {
	in := strings.TrimSpace(ref)
	if in == "" {
		return domain.Entry{}, &domain.OpError{
			Op:   "catalog.lookup",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("empty hexagram reference: %w", domain.ErrInvalidInput),
		}
	}

	if isNumber(in) && !isLineString(in) {
		n, err := strconv.Atoi(in)
		if err != nil {
			// Only overflow gets here.
			n = -1
		}
		return c.ByNumber(n)
	}

	p, err := domain.ParsePattern(in)
	if err != nil {
		return domain.Entry{}, err
	}
	return c.ByPattern(p), nil
}

func isNumber(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return s != "" && isDigits(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLineString(s string) bool {
	return len(s) == 6 && strings.Trim(s, "01") == ""
}
