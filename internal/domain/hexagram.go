package domain

// Hexagram is six drawn lines, index 0 being the bottom line.
type Hexagram [6]Line

// Pattern derives the polarity signature. Stability plays no part in it.
func (h Hexagram) Pattern() Pattern {
	var p Pattern
	for i, l := range h {
		if l.IsYang() {
			p |= 1 << uint(i)
		}
	}
	return p
}

// ChangingLines returns the indices (0 = bottom) of old lines in ascending order.
func (h Hexagram) ChangingLines() []int {
	var out []int
	for i, l := range h {
		if l.IsChanging() {
			out = append(out, i)
		}
	}
	return out
}

// Resolved returns the hexagram every changing line turns into: old lines
// flip polarity and all lines become young.
func (h Hexagram) Resolved() Hexagram {
	var out Hexagram
	for i, l := range h {
		out[i] = l.Changed()
	}
	return out
}

// Valid reports whether every line holds a 6..9 value.
func (h Hexagram) Valid() bool {
	for _, l := range h {
		if !l.Valid() {
			return false
		}
	}
	return true
}

// StableHexagram builds the all-young hexagram for a pattern.
func StableHexagram(p Pattern) Hexagram {
	var h Hexagram
	for i := range h {
		if p.Yang(i) {
			h[i] = YoungYang
		} else {
			h[i] = YoungYin
		}
	}
	return h
}
