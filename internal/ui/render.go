package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"perfplayground/internal/grid"
	"perfplayground/internal/model"
	"perfplayground/internal/page"
	"perfplayground/internal/util/logx"
)

const consoleHeight = 10

func (m *Model) View() string {
	v := m.renderPage()
	if m.modalActive {
		// Dim the background content while keeping it visible
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderModal())
	}
	return v
}

func (m *Model) renderNav() string {
	tabs := make([]string, 0, len(routes))
	for i, r := range routes {
		st := m.styles.TabInactive
		if i == m.routeIdx {
			st = m.styles.TabActive
		}
		tabs = append(tabs, st.Render(r.label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.NavTitle.Render("🐕 Render Performance Demo"),
		lipgloss.JoinHorizontal(lipgloss.Center, tabs...),
		m.styles.Location.Render("  "+m.location()),
	)
	return m.styles.Nav.Width(m.termWidth).Render(bar)
}

func (m *Model) renderInfo(p page.InfoPanel) string {
	st, ok := m.styles.Tone[p.Tone]
	if !ok {
		st = m.styles.Tone[page.ToneInfo]
	}
	body := lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n" + p.Description
	return st.Width(m.termWidth - 2).Render(body)
}

func (m *Model) renderActions() string {
	sorts := []model.SortKey{model.SortName, model.SortBreed, model.SortRating}
	keys := map[model.SortKey]string{model.SortName: "n", model.SortBreed: "b", model.SortRating: "r"}
	labels := map[model.SortKey]string{model.SortName: "Name", model.SortBreed: "Breed", model.SortRating: "Behavior"}
	parts := make([]string, 0, len(sorts))
	for _, k := range sorts {
		st := m.styles.SortIdle
		if k == m.page.SortKey() {
			st = m.styles.SortActive
		}
		parts = append(parts, st.Render(fmt.Sprintf("[%s] %s", keys[k], labels[k])))
	}
	line := fmt.Sprintf("%s  Total Dogs: %d   Sort by: %s",
		m.styles.Button.Render("[a] 🐶 Add Random Dog"),
		m.page.Len(),
		strings.Join(parts, " "),
	)
	if f := m.page.Filter(); f != nil {
		line += m.styles.Help.Render("   filter: " + f.Criteria().String() + " [F]=clear")
	}
	return line
}

func (m *Model) renderStatus() string {
	st := m.page.Table().Stats()
	resorted := "reused"
	if st.Resorted {
		resorted = "recomputed"
	}
	status := fmt.Sprintf("[%s] | last pass: %d/%d rows rendered, sort %s | passes:%d | [?]=help [q]=quit | %s",
		m.page.Variant.Table, st.RowRenders, st.Rows, resorted, st.Passes, m.lastMsg)
	return m.styles.Status.Render(status)
}

func (m *Model) renderBottom() string {
	if m.inlineMode == inlineFilter {
		return m.filterInput.View() + m.styles.Help.Render("    [enter]=apply [esc]=cancel")
	}
	if m.termWidth > 0 {
		return strings.Repeat(" ", m.termWidth)
	}
	return ""
}

func (m *Model) renderPage() string {
	v := m.page.Variant
	title := m.styles.TitleBad.Render(v.Title)
	if v.Table == grid.VariantOptimized {
		title = m.styles.TitleGood.Render(v.Title)
	}
	head := []string{m.renderNav(), title, m.styles.Banner.Width(m.termWidth).Render(v.Banner)}
	before := m.renderInfo(v.Before)
	after := m.renderInfo(v.After)
	cons := m.page.Console().View(m.termWidth, consoleHeight)
	actions := m.renderActions()
	bottom := []string{m.renderBottom(), m.renderStatus()}

	fixed := lipgloss.Height(strings.Join(head, "\n")) + lipgloss.Height(cons) + lipgloss.Height(actions) + len(bottom)
	avail := m.termHeight - fixed
	// Drop explanatory panels first when the terminal is short
	blocks := head
	tableH := avail - lipgloss.Height(before) - lipgloss.Height(after)
	switch {
	case tableH >= 5:
		blocks = append(blocks, before, cons, after)
	case avail-lipgloss.Height(before) >= 5:
		tableH = avail - lipgloss.Height(before)
		blocks = append(blocks, before, cons)
	default:
		tableH = avail
		blocks = append(blocks, cons)
	}
	// header row is included in the table's own height
	if tableH < 3 {
		tableH = 3
	}
	t := m.tbl
	t.SetHeight(tableH - 1)
	blocks = append(blocks, actions, t.View())
	blocks = append(blocks, bottom...)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) renderHelp() string {
	if len(m.helpItems) == 0 {
		m.helpItems = m.buildHelpItems()
	}
	if m.helpSel < 0 {
		m.helpSel = 0
	}
	if m.helpSel >= len(m.helpItems) {
		m.helpSel = len(m.helpItems) - 1
	}
	lines := []string{"Shortcuts:"}
	currentGroup := ""
	lineIndexOfSel := 0
	for i, it := range m.helpItems {
		if it.group != currentGroup {
			currentGroup = it.group
			lines = append(lines, "", currentGroup+":")
		}
		prefix := "  "
		if i == m.helpSel {
			prefix = "> "
			lineIndexOfSel = len(lines)
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, keyLabel(it.key), it.text))
	}
	// Keep selection visible
	if m.modalVP.Height > 0 {
		top := m.modalVP.YOffset
		bottom := top + m.modalVP.Height - 1
		if lineIndexOfSel <= top {
			m.modalVP.YOffset = max(lineIndexOfSel-1, 0)
		} else if lineIndexOfSel >= bottom {
			m.modalVP.YOffset = max(lineIndexOfSel-m.modalVP.Height+2, 0)
		}
	}
	return m.styles.Help.Render(strings.Join(lines, "\n"))
}

func (m *Model) openHelpModal() {
	m.modalActive = true
	m.modalKind = modalHelp
	m.modalTitle = "Help"
	m.helpItems = m.buildHelpItems()
	m.helpSel = 0
	m.modalBody = m.renderHelp()
	m.resizeModal()
}

func (m *Model) openAppLogsModal() {
	m.modalActive = true
	m.modalKind = modalLogs
	m.modalTitle = "Application Logs"
	m.modalBody = logx.Dump()
	m.resizeModal()
	m.modalVP.GotoBottom()
}

func (m *Model) resizeModal() {
	w := m.termWidth - 6
	h := m.termHeight - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.modalVP = viewport.New(w-4, h-4)
	m.modalVP.SetContent(m.modalBody)
}

func (m *Model) renderModal() string {
	var content string
	switch m.modalKind {
	case modalHelp:
		m.modalVP.SetContent(m.renderHelp())
		content = m.modalVP.View() + "\n[esc]=close  [enter]=run"
	case modalLogs:
		content = m.modalVP.View() + "\n[esc/enter]=close  [↑/↓]=scroll"
	default:
		content = m.modalVP.View() + "\n[esc/enter]=close"
	}
	boxW := m.termWidth - 6
	if boxW < 20 {
		boxW = 20
	}
	title := m.styles.PopupTitle.Render(m.modalTitle)
	body := m.styles.PopupBox.Width(boxW).Render(title + "\n" + content)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}

func overlay(base, overlay string) string {
	// Draw overlay on top of base by replacing lines where overlay has content.
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(overlay, "\n")
	n := max(len(bLines), len(oLines))
	for len(bLines) < n {
		bLines = append(bLines, "")
	}
	for len(oLines) < n {
		oLines = append(oLines, "")
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		// whitespace-only overlay lines are transparent
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}
