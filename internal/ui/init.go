package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"perfplayground/internal/config"
	"perfplayground/internal/grid"
	"perfplayground/internal/page"
	"perfplayground/internal/util/logx"
)

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	m := &Model{
		ctx:         ctx,
		cfg:         cfg,
		render:      logx.New("render"),
		styles:      NewStyles(cfg.Theme == config.ThemeDark),
		keymap:      DefaultKeyMap(),
		filterInput: textinput.New(),
		termWidth:   120,
		termHeight:  40,
	}
	m.filterInput.Placeholder = `text, /regex/ or expression like rating >= 4 && breed == "Pug"`
	m.filterInput.CharLimit = 256
	m.filterInput.Prompt = "filter> "
	m.modalVP = viewport.New(80, 20)

	m.tbl = table.New(table.WithColumns(grid.Columns()), table.WithFocused(true), table.WithHeight(10))
	ts := table.DefaultStyles()
	ts.Header = m.styles.TableStyles.Header
	ts.Cell = m.styles.TableStyles.Cell
	ts.Selected = m.styles.TableStyles.Selected
	m.tbl.SetStyles(ts)

	m.navigate(routeIndex(cfg.Route))
	m.cycle()
	return m
}

// navigate unmounts the current page and mounts a fresh one for routes[idx].
func (m *Model) navigate(idx int) {
	if idx < 0 || idx >= len(routes) {
		return
	}
	if m.page != nil {
		m.page.Unmount()
	}
	r := routes[idx]
	m.routeIdx = idx
	m.page = page.New(r.variant, m.render, page.Options{Initial: m.cfg.InitialRecords, MaxLogs: m.cfg.MaxLogs})
	m.page.Console().SetExpanded(!m.cfg.ConsoleCollapsed)
	m.page.Mount()
	m.view = grid.View{}
	m.tbl.SetRows(nil)
	m.tbl.SetCursor(0)
	m.inlineMode = inlineNone
	m.filterInput.Blur()
	m.lastMsg = ""
	logx.Infof("route: %s", m.location())
}

func (m *Model) location() string { return m.cfg.Location(routes[m.routeIdx].path) }

// cycle ends an interaction: the page's render pass runs first, then the
// console applies what was captured during it.
func (m *Model) cycle() {
	if m.page.Dirty() {
		m.view = m.page.Render()
		m.tbl.SetRows(m.view.Rows)
		if n := len(m.view.Rows); n > 0 && m.tbl.Cursor() >= n {
			m.tbl.SetCursor(n - 1)
		} else if n > 0 && m.tbl.Cursor() < 0 {
			m.tbl.SetCursor(0)
		}
	}
	m.page.Console().Drain()
}

func Run(ctx context.Context, cfg *config.Config) error {
	m := initialModel(ctx, cfg)
	defer m.page.Unmount()
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}
