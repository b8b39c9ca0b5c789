package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/martinmr/iching/internal/infra/report"
)

type Theme struct {
	report.Styles

	Help  lipgloss.Style
	Toast lipgloss.Style
}

func DefaultTheme() Theme {
	r := lipgloss.DefaultRenderer()
	return Theme{
		Styles: report.NewStyles(r),
		Help:   r.NewStyle().Faint(true),
		Toast:  r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
