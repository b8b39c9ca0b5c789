package domain

import "testing"

func TestLineAttributes(t *testing.T) {
	cases := []struct {
		line     Line
		yang     bool
		changing bool
		changed  Line
	}{
		{OldYin, false, true, YoungYang},
		{YoungYang, true, false, YoungYang},
		{YoungYin, false, false, YoungYin},
		{OldYang, true, true, YoungYin},
	}
	for _, c := range cases {
		if got := c.line.IsYang(); got != c.yang {
			t.Errorf("%v.IsYang() = %v, want %v", c.line, got, c.yang)
		}
		if got := c.line.IsChanging(); got != c.changing {
			t.Errorf("%v.IsChanging() = %v, want %v", c.line, got, c.changing)
		}
		if got := c.line.Changed(); got != c.changed {
			t.Errorf("%v.Changed() = %v, want %v", c.line, got, c.changed)
		}
		if c.line.Changed().IsChanging() {
			t.Errorf("%v.Changed() must be stable", c.line)
		}
	}
}

func TestParseLine(t *testing.T) {
	for _, v := range []int{6, 7, 8, 9} {
		if _, err := ParseLine(v); err != nil {
			t.Fatalf("ParseLine(%d) unexpected error: %v", v, err)
		}
	}
	for _, v := range []int{0, 5, 10, -1} {
		_, err := ParseLine(v)
		if !IsKind(err, KindInvalidInput) {
			t.Fatalf("ParseLine(%d) error = %v, want invalid_input", v, err)
		}
	}
}
