package domain

import "fmt"

// Line is a single drawn line, canonically valued 6 to 9.
//
// Odd values are yang, even values yin. 6 and 9 are "old" (changing) lines,
// 7 and 8 are "young" (stable) lines.
type Line int

const (
	OldYin    Line = 6
	YoungYang Line = 7
	YoungYin  Line = 8
	OldYang   Line = 9
)

// Lines lists the four line values in ascending order.
var Lines = [4]Line{OldYin, YoungYang, YoungYin, OldYang}

func (l Line) Valid() bool {
	return l >= OldYin && l <= OldYang
}

// IsYang reports the polarity of the line.
func (l Line) IsYang() bool {
	return l%2 == 1
}

// IsChanging reports whether the line is old and flips in the resulting hexagram.
func (l Line) IsChanging() bool {
	return l == OldYin || l == OldYang
}

// Changed returns the stable line the receiver resolves to. Changing lines
// take the opposite polarity; stable lines are returned unchanged.
func (l Line) Changed() Line {
	switch l {
	case OldYin:
		return YoungYang
	case OldYang:
		return YoungYin
	default:
		return l
	}
}

func (l Line) String() string {
	switch l {
	case OldYin:
		return "old yin"
	case YoungYang:
		return "young yang"
	case YoungYin:
		return "young yin"
	case OldYang:
		return "old yang"
	default:
		return fmt.Sprintf("line(%d)", int(l))
	}
}

// ParseLine converts a 6..9 value into a Line.
func ParseLine(v int) (Line, error) {
	l := Line(v)
	if !l.Valid() {
		return 0, &OpError{
			Op:   "domain.parse_line",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("line value %d not in 6..9: %w", v, ErrInvalidInput),
		}
	}
	return l, nil
}
