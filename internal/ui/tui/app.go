package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/report"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type hexItem struct {
	entry domain.Entry
}

func (h hexItem) Title() string { return report.EntryTitle(h.entry) }
func (h hexItem) Description() string {
	return h.entry.Pattern.String()
}

// FilterValue matches on number, names and line string.
func (h hexItem) FilterValue() string {
	e := h.entry
	return strconv.Itoa(e.Number) + " " + e.Name + " " + e.English + " " + e.Pattern.String()
}

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap

	scr     screen
	list    list.Model
	detail  viewport.Model
	help    help.Model
	spinner spinner.Model

	title   string
	casting bool
	toast   string
	width   int
}

func Run(deps Deps) error {
	p := tea.NewProgram(guarded{newModel(deps)}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	t := DefaultTheme()

	var items []list.Item
	if deps.Catalog != nil {
		for _, e := range deps.Catalog.Entries() {
			items = append(items, hexItem{entry: e})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "I Ching"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		theme:   t,
		deps:    deps,
		keys:    defaultKeyMap(),
		scr:     screenList,
		list:    l,
		detail:  viewport.New(0, 0),
		help:    help.New(),
		spinner: sp,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width-4, msg.Height-6)
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 6
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.casting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case castDoneMsg:
		m.casting = false
		if msg.err != nil {
			m.deps.Logger.Warn("tui.cast.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = ""
		m.open("Reading", renderReading(m.theme.Styles, m.deps.Catalog, msg.reading))
		return m, nil

	case tea.KeyMsg:
		// Typed filter text belongs to the list.
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case key.Matches(msg, m.keys.Back) && m.scr == screenDetail:
			m.scr = screenList
			return m, nil

		case key.Matches(msg, m.keys.Open) && m.scr == screenList:
			it, ok := m.list.SelectedItem().(hexItem)
			if !ok {
				return m, nil
			}
			m.open(report.EntryTitle(it.entry), renderAnalysis(m.theme.Styles, m.deps.Catalog, it.entry))
			return m, nil

		case key.Matches(msg, m.keys.Cast):
			if m.casting {
				return m, nil
			}
			m.casting = true
			m.toast = ""
			return m, tea.Batch(m.spinner.Tick, cmdCast(m.deps))
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenList:
		m.list, cmd = m.list.Update(msg)
	case screenDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m model) backToList(toast string) model {
	m.scr = screenList
	m.title = ""
	m.casting = false
	m.toast = toast
	return m
}

func (m *model) open(title, content string) {
	m.title = title
	m.detail.SetContent(content)
	m.detail.GotoTop()
	m.scr = screenDetail
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	status := ""
	switch {
	case m.casting:
		status = m.spinner.View() + " casting (" + string(m.deps.Method) + ")…"
	case m.toast != "":
		status = m.theme.Toast.Render(clampString(m.toast, max(m.width-6, 20)))
	}

	switch m.scr {
	case screenList:
		return wrap.Render(m.list.View() + "\n" + status + "\n" + m.help.View(listKeys(m.keys)))

	case screenDetail:
		header := m.theme.Title.Render(m.title)
		return wrap.Render(header + "\n\n" + m.detail.View() + "\n" + status + "\n" + m.help.View(detailKeys(m.keys)))

	default:
		return wrap.Render(fmt.Sprintf("unknown screen %d", m.scr))
	}
}
