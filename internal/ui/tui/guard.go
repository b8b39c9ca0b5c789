package tui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// guarded runs the browser with panic recovery. A panic while handling a
// message drops the user back on the hexagram list with a toast; a panic
// while drawing replaces the frame with a short notice.
type guarded struct {
	model
}

func (g guarded) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			g.logPanic("update", r)
			g.model = g.backToList("Could not show that hexagram (see logs)")
			next, cmd = g, nil
		}
	}()

	inner, c := g.model.Update(msg)
	if m, ok := inner.(model); ok {
		g.model = m
	}
	return g, c
}

func (g guarded) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.logPanic("view", r)
			out = "The browser could not draw this screen (see logs). Press q to quit."
		}
	}()
	return g.model.View()
}

func (g guarded) logPanic(phase string, r any) {
	g.deps.Logger.Error("browse.panic",
		"phase", phase,
		"title", g.title,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = guarded{}
