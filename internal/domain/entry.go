package domain

// TrigramInfo is the static description of one of the eight trigrams.
type TrigramInfo struct {
	Trigram   Trigram `json:"lines" yaml:"lines"`
	Name      string  `json:"name" yaml:"name"`
	Chinese   string  `json:"chinese" yaml:"chinese"`
	Symbol    string  `json:"symbol" yaml:"symbol"`
	Image     string  `json:"image" yaml:"image"`
	Attribute string  `json:"attribute" yaml:"attribute"`
}

// Entry is a hexagram's identity in the King Wen sequence.
type Entry struct {
	Number  int     `json:"number" yaml:"number"`
	Pattern Pattern `json:"pattern" yaml:"pattern"`
	Name    string  `json:"name" yaml:"name"`
	English string  `json:"english" yaml:"english"`
}

// Symbol is the Unicode hexagram character; the block follows King Wen order.
func (e Entry) Symbol() string {
	if e.Number < 1 || e.Number > PatternCount {
		return ""
	}
	return string(rune(0x4DC0 + e.Number - 1))
}

// Lower is the entry's lower trigram.
func (e Entry) Lower() Trigram { return e.Pattern.Lower() }

// Upper is the entry's upper trigram.
func (e Entry) Upper() Trigram { return e.Pattern.Upper() }
