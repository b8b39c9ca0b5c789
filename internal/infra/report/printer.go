package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase/analysis"
)

// Printer writes reports in one format.
type Printer struct {
	w       io.Writer
	format  Format
	catalog ports.HexagramCatalog
	styles  Styles
}

func New(w io.Writer, format Format, color bool, cat ports.HexagramCatalog) *Printer {
	return &Printer{
		w:       w,
		format:  format,
		catalog: cat,
		styles:  NewStyles(NewRenderer(w, color)),
	}
}

// NewStyled builds a pretty printer with caller supplied styles.
func NewStyled(w io.Writer, st Styles, cat ports.HexagramCatalog) *Printer {
	return &Printer{w: w, format: FormatPretty, catalog: cat, styles: st}
}

// structured encodes v for the json and yaml formats and reports whether it did.
func (p *Printer) structured(v any) (bool, error) {
	switch p.format {
	case FormatJSON:
		return true, encodeJSON(p.w, v)
	case FormatYAML:
		return true, encodeYAML(p.w, v)
	case FormatPretty, "":
		return false, nil
	}
	return true, fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", p.format)
}

func (p *Printer) Reading(r domain.Reading) error {
	if done, err := p.structured(r); done {
		return err
	}
	st := p.styles

	if r.Question != "" {
		fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Question"), r.Question)
	}
	source := string(r.Randomness)
	if source == "" {
		source = "given lines"
	}
	fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Method"), r.Method)
	fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Source"), source)
	if len(r.ChangingLines) > 0 {
		fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Changing lines"), positions(r.ChangingLines))
	} else {
		fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Changing lines"), st.Muted.Render("none"))
	}
	fmt.Fprintln(p.w)

	primary := RenderHexagram(st, p.catalog, r.PrimaryEntry, r.Primary)
	if !r.HasSecondary() {
		fmt.Fprintln(p.w, primary)
		return nil
	}
	secondary := RenderHexagram(st, p.catalog, *r.SecondaryEntry, *r.Secondary)
	fmt.Fprintln(p.w, sideBySide(primary, st.Muted.Render("→"), secondary))
	return nil
}

func (p *Printer) Analysis(r analysis.Report) error {
	if done, err := p.structured(r); done {
		return err
	}
	st := p.styles

	fmt.Fprintln(p.w, RenderPattern(st, p.catalog, r.Entry))
	fmt.Fprintln(p.w)

	rows := []struct {
		label string
		value string
	}{
		{"Lines (bottom first)", r.Entry.Pattern.String()},
		{"Lower trigram", TrigramLabel(r.Lower)},
		{"Upper trigram", TrigramLabel(r.Upper)},
		{"Nuclear lower trigram", TrigramLabel(r.NuclearLower)},
		{"Nuclear upper trigram", TrigramLabel(r.NuclearUpper)},
		{"Opposite", EntryTitle(r.Opposite)},
		{"Inverse", EntryTitle(r.Inverse)},
		{"Nuclear", EntryTitle(r.Nuclear)},
		{"Nuclear root", EntryTitle(r.NuclearRoot)},
	}
	for _, row := range rows {
		fmt.Fprintf(p.w, "%s %s\n", st.Label.Render(row.label), row.value)
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, st.Title.Render("Reachable with one operation"))
	for _, reach := range r.Reachable {
		fmt.Fprintf(p.w, "  %s %s  %s\n",
			st.Label.Render(reach.Operation.String()),
			reach.Entry.Pattern,
			EntryTitle(reach.Entry),
		)
	}
	return nil
}

func (p *Printer) Paths(r analysis.PathResult) error {
	if done, err := p.structured(r); done {
		return err
	}
	st := p.styles

	ops := 0
	if len(r.Paths) > 0 {
		ops = r.Paths[0].Ops()
	}
	fmt.Fprintf(p.w, "%s\n", st.Title.Render(fmt.Sprintf("%s → %s", EntryTitle(r.Start), EntryTitle(r.End))))
	fmt.Fprintf(p.w, "%s\n\n", st.Subtitle.Render(fmt.Sprintf("%d path(s) of %d operation(s)", len(r.Paths), ops)))

	for i, path := range r.Paths {
		fmt.Fprintf(p.w, "%s\n", st.Title.Render(fmt.Sprintf("Path #%d (%d line changes)", i+1, path.LineChanges())))
		p.writePath(path)
		fmt.Fprintln(p.w)
	}
	return nil
}

func (p *Printer) writePath(path analysis.Path) {
	for _, step := range path {
		e := p.catalog.ByPattern(step.Pattern)
		fmt.Fprintf(p.w, "  %s %s  %s\n", p.styles.Label.Render(step.Operation.String()), step.Pattern, EntryTitle(e))
	}
}

// Sequence prints the sequence summary and, when present, every transition.
func (p *Printer) Sequence(title string, r analysis.SequenceReport) error {
	if done, err := p.structured(r); done {
		return err
	}

	fmt.Fprintln(p.w, p.styles.Title.Render(title))
	p.writeSummary(r)

	for _, tr := range r.Transitions {
		fmt.Fprintln(p.w)
		from, _ := p.catalog.ByNumber(tr.From)
		to, _ := p.catalog.ByNumber(tr.To)
		fmt.Fprintln(p.w, p.styles.Subtitle.Render(fmt.Sprintf("#%d → #%d: %d path(s)", from.Number, to.Number, len(tr.Paths))))
		for _, path := range tr.Paths {
			p.writePath(path)
		}
	}
	return nil
}

func (p *Printer) Comparison(c analysis.Comparison) error {
	if done, err := p.structured(c); done {
		return err
	}
	st := p.styles

	fmt.Fprintln(p.w, st.Title.Render("King Wen sequence"))
	p.writeSummary(c.KingWen)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, st.Title.Render(fmt.Sprintf("Best of %d random sequences", c.Samples)))
	p.writeSummary(c.Random)
	return nil
}

func (p *Printer) writeSummary(r analysis.SequenceReport) {
	st := p.styles
	fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Sequence"), joinInts(r.Sequence))
	fmt.Fprintf(p.w, "%s %d\n", st.Label.Render("Total operations"), r.TotalOps)
	fmt.Fprintf(p.w, "%s %d\n", st.Label.Render("Total line changes"), r.TotalLineChanges)
	fmt.Fprintf(p.w, "%s %.3f\n", st.Label.Render("Line changes/operation"), r.ChangesPerOp())
	fmt.Fprintf(p.w, "%s %s\n", st.Label.Render("Total paths"), r.TotalPaths.String())
}

// Catalog lists entries as a table in the order given.
func (p *Printer) Catalog(entries []domain.Entry) error {
	if done, err := p.structured(entries); done {
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Number),
			e.Symbol(),
			e.Pattern.String(),
			e.Name,
			e.English,
			p.catalog.Trigram(e.Upper()).Symbol + p.catalog.Trigram(e.Lower()).Symbol,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.Muted).
		Headers("#", "", "LINES", "NAME", "ENGLISH", "TRIGRAMS").
		Rows(rows...)
	fmt.Fprintln(p.w, t.Render())
	return nil
}

// positions renders zero-based line indices as 1-based positions.
func positions(idx []int) string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(out, ", ")
}

func joinInts(xs []int) string {
	out := make([]string, len(xs))
	for i, v := range xs {
		out[i] = strconv.Itoa(v)
	}
	return strings.Join(out, " ")
}
