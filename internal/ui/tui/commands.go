package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/martinmr/iching/internal/usecase"
)

const castTimeout = 30 * time.Second

func cmdCast(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Caster == nil {
			return castDoneMsg{err: errors.New("no randomness source configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), castTimeout)
		defer cancel()

		r, err := deps.Caster.Execute(ctx, usecase.CastRequest{Method: deps.Method})
		return castDoneMsg{reading: r, err: err}
	}
}
