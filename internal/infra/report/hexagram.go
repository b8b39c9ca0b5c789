package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

const (
	yangGlyph = "━━━━━━━━━━━"
	yinGlyph  = "━━━━   ━━━━"
)

// EntryTitle is "#63 ䷾ Jì Jì (After Completion)".
func EntryTitle(e domain.Entry) string {
	return fmt.Sprintf("#%d %s %s (%s)", e.Number, e.Symbol(), e.Name, e.English)
}

// TrigramLabel is "☲ Lí (Fire)".
func TrigramLabel(t domain.TrigramInfo) string {
	return fmt.Sprintf("%s %s (%s)", t.Symbol, t.Name, t.Image)
}

// RenderHexagram draws the lines top first. Changing lines carry their value
// and a marker; stable lines only their value.
func RenderHexagram(st Styles, cat ports.HexagramCatalog, e domain.Entry, lines domain.Hexagram) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(EntryTitle(e)))
	b.WriteByte('\n')
	lower, upper := cat.Trigram(e.Lower()), cat.Trigram(e.Upper())
	b.WriteString(st.Subtitle.Render(TrigramLabel(upper) + " over " + TrigramLabel(lower)))
	b.WriteString("\n\n")

	for i := len(lines) - 1; i >= 0; i-- {
		l := lines[i]
		b.WriteString(renderLine(st, l))
		b.WriteString(fmt.Sprintf("  %d", int(l)))
		switch {
		case l == domain.OldYang:
			b.WriteString(st.Changing.Render("  o"))
		case l == domain.OldYin:
			b.WriteString(st.Changing.Render("  x"))
		}
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return st.Card.Render(b.String())
}

// RenderPattern draws a stable hexagram with its line string.
func RenderPattern(st Styles, cat ports.HexagramCatalog, e domain.Entry) string {
	return RenderHexagram(st, cat, e, domain.StableHexagram(e.Pattern))
}

func renderLine(st Styles, l domain.Line) string {
	glyph, style := yinGlyph, st.Yin
	if l.IsYang() {
		glyph, style = yangGlyph, st.Yang
	}
	if l.IsChanging() {
		style = st.Changing
	}
	return style.Render(glyph)
}

// sideBySide joins blocks horizontally with a gap.
func sideBySide(blocks ...string) string {
	parts := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
