package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"perfplayground/internal/filter"
	"perfplayground/internal/model"
	"perfplayground/internal/util/logx"
)

func (m *Model) buildHelpItems() []helpItem {
	km := m.keymap
	return []helpItem{
		{group: "Navigation", text: "Next page", key: km.NextRoute},
		{group: "Navigation", text: "Previous page", key: km.PrevRoute},
		{group: "Navigation", text: "Unoptimized page", key: km.Unoptimized},
		{group: "Navigation", text: "Optimized page", key: km.Optimized},

		{group: "Records", text: "Add random dog", key: km.Add},
		{group: "Records", text: "Remove selected dog", key: km.Remove},
		{group: "Records", text: "Previous row", key: tea.Key{Type: tea.KeyUp}},
		{group: "Records", text: "Next row", key: tea.Key{Type: tea.KeyDown}},

		{group: "Table", text: "Sort by name", key: km.SortName},
		{group: "Table", text: "Sort by breed", key: km.SortBreed},
		{group: "Table", text: "Sort by behavior", key: km.SortRating},
		{group: "Table", text: "Filter", key: km.Filter},
		{group: "Table", text: "Clear filter", key: km.ClearFilter},

		{group: "Console", text: "Clear console", key: km.ClearConsole},
		{group: "Console", text: "Expand/collapse console", key: km.ToggleConsole},
		{group: "Console", text: "Application logs", key: km.AppLogs},

		{group: "Control", text: "Help", key: km.Help},
		{group: "Control", text: "Quit", key: km.Quit},
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	m.cycle()
	return m, cmd
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.tbl.SetWidth(msg.Width)
		if m.modalActive {
			m.resizeModal()
		}
		return nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		if m.modalActive {
			return m.handleModalKey(msg)
		}
		if m.inlineMode == inlineFilter {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	if m.modalKind == modalHelp {
		switch {
		case msg.Type == tea.KeyUp:
			if m.helpSel > 0 {
				m.helpSel--
			}
			return nil
		case msg.Type == tea.KeyDown:
			if m.helpSel+1 < len(m.helpItems) {
				m.helpSel++
			}
			return nil
		case msg.Type == tea.KeyEnter:
			m.modalActive = false
			if len(m.helpItems) > 0 {
				return keyCmd(m.helpItems[m.helpSel].key)
			}
			return nil
		}
	}
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter || keyMatches(msg, m.keymap.Quit) || keyMatches(msg, m.keymap.Help) {
		m.modalActive = false
		return nil
	}
	if m.modalKind == modalLogs {
		var cmd tea.Cmd
		m.modalVP, cmd = m.modalVP.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.applyFilter(m.filterInput.Value())
		m.inlineMode = inlineNone
		m.filterInput.Blur()
		return nil
	case tea.KeyEsc:
		m.inlineMode = inlineNone
		m.filterInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return cmd
}

func (m *Model) applyFilter(text string) {
	c := filter.ParseInput(text)
	if c.Empty() {
		m.page.SetFilter(nil)
		m.lastMsg = "filter cleared"
		return
	}
	ev, err := filter.NewEvaluator(c)
	if err != nil {
		m.lastMsg = fmt.Sprintf("filter error: %v", err)
		logx.Warnf("filter: %q rejected: %v", text, err)
		return
	}
	m.page.SetFilter(ev)
	m.lastMsg = "filter: " + c.String()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := m.keymap
	switch {
	case keyMatches(msg, km.Quit):
		return tea.Quit
	case keyMatches(msg, km.Help):
		m.openHelpModal()
	case keyMatches(msg, km.AppLogs):
		m.openAppLogsModal()
	case keyMatches(msg, km.NextRoute):
		m.navigate((m.routeIdx + 1) % len(routes))
	case keyMatches(msg, km.PrevRoute):
		m.navigate((m.routeIdx + len(routes) - 1) % len(routes))
	case keyMatches(msg, km.Unoptimized):
		if m.routeIdx != 0 {
			m.navigate(0)
		}
	case keyMatches(msg, km.Optimized):
		if m.routeIdx != 1 {
			m.navigate(1)
		}
	case keyMatches(msg, km.Add):
		r := m.page.Add()
		m.lastMsg = fmt.Sprintf("added %s (ID: %d)", r.Name, r.ID)
	case keyMatches(msg, km.Remove), keyMatches(msg, km.RemoveAlt):
		m.removeSelected()
	case keyMatches(msg, km.SortName):
		m.sortBy(model.SortName)
	case keyMatches(msg, km.SortBreed):
		m.sortBy(model.SortBreed)
	case keyMatches(msg, km.SortRating):
		m.sortBy(model.SortRating)
	case keyMatches(msg, km.Filter):
		m.inlineMode = inlineFilter
		m.filterInput.SetValue(m.page.Filter().Criteria().String())
		m.filterInput.CursorEnd()
		m.filterInput.Focus()
	case keyMatches(msg, km.ClearFilter):
		m.applyFilter("")
	case keyMatches(msg, km.ClearConsole):
		m.page.Console().Clear()
	case keyMatches(msg, km.ToggleConsole):
		m.page.Console().Toggle()
	default:
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) removeSelected() {
	cur := m.tbl.Cursor()
	if cur < 0 || cur >= len(m.view.IDs) {
		m.lastMsg = "nothing to remove"
		return
	}
	id := m.view.IDs[cur]
	if m.view.Remove(cur) {
		m.lastMsg = fmt.Sprintf("removed ID: %d", id)
	}
}

func (m *Model) sortBy(k model.SortKey) {
	if m.page.Sort(k) {
		m.lastMsg = "sorted by " + k.String()
	}
}
