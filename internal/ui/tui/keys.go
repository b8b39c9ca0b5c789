package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open key.Binding
	Cast key.Binding
	Back key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		Cast: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cast")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// listKeys is the help.KeyMap shown under the hexagram list.
type listKeys keyMap

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Cast, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// detailKeys is the help.KeyMap shown under a detail page.
type detailKeys keyMap

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Cast, k.Quit}
}

func (k detailKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
