package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are the lipgloss styles shared by the pretty report and the browser.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Yang     lipgloss.Style
	Yin      lipgloss.Style
	Changing lipgloss.Style
	Card     lipgloss.Style
}

// NewRenderer binds a renderer to w; color false forces plain ASCII output.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Label:    r.NewStyle().Foreground(lipgloss.Color("63")).Width(24),
		Muted:    r.NewStyle().Faint(true),
		Yang:     r.NewStyle().Foreground(lipgloss.Color("214")),
		Yin:      r.NewStyle().Foreground(lipgloss.Color("39")),
		Changing: r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Card: r.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
