package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfplayground/internal/config"
	"perfplayground/internal/console"
)

func testConfig(route string) *config.Config {
	return &config.Config{
		Route:          route,
		BasePath:       "/react-performance-playground",
		MaxLogs:        50,
		InitialRecords: 3,
		Theme:          config.ThemeDark,
	}
}

func newTestModel(t *testing.T, route string) *Model {
	t.Helper()
	m := initialModel(context.Background(), testConfig(route))
	t.Cleanup(func() { m.page.Unmount() })
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 60})
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func countMessages(entries []console.Entry, substr string) int {
	n := 0
	for _, e := range entries {
		if strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}

func TestInitialPageRendersIntoConsole(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	require.Equal(t, 3, m.page.Len())
	entries := m.page.Console().Entries()
	assert.Equal(t, 1, countMessages(entries, "UNOPTIMIZED: table rendered"))
	assert.Equal(t, 3, countMessages(entries, "UNOPTIMIZED: row"))
	assert.Len(t, m.tbl.Rows(), 3)
}

func TestAddAndRemoveKeys(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	press(m, runes("a"))
	require.Equal(t, 4, m.page.Len())
	require.Len(t, m.tbl.Rows(), 4)

	m.tbl.SetCursor(1)
	target := m.view.IDs[1]
	press(m, runes("d"))
	assert.Equal(t, 3, m.page.Len())
	for _, r := range m.page.Records() {
		assert.NotEqual(t, target, r.ID)
	}
	assert.Len(t, m.tbl.Rows(), 3)
	assert.Contains(t, m.lastMsg, "removed")
}

func TestNavigationRemountsPage(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	first := m.page
	press(m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, 1, m.routeIdx)
	assert.NotSame(t, first, m.page)
	assert.False(t, first.Console().Mounted())
	assert.True(t, m.page.Console().Mounted())
	assert.Equal(t, 1, m.render.Subscribers())
	assert.Equal(t, "/react-performance-playground/optimized", m.location())
	assert.Equal(t, 1, countMessages(m.page.Console().Entries(), "OPTIMIZED: table rendered"))

	press(m, runes("1"))
	assert.Equal(t, 0, m.routeIdx)
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.routeIdx)
}

func TestSortKeyOnOptimizedPageFiresNoRowMarkers(t *testing.T) {
	m := newTestModel(t, config.RouteOptimized)
	press(m, runes("c"))
	require.Equal(t, 0, m.page.Console().Len())

	press(m, runes("r"))
	entries := m.page.Console().Entries()
	assert.Equal(t, 0, countMessages(entries, "OPTIMIZED: row"))
	assert.Equal(t, 1, countMessages(entries, "recalculating sorted"))
}

func TestSortKeyOnUnoptimizedPageFiresEveryRowMarker(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	press(m, runes("c"))
	press(m, runes("b"))
	assert.Equal(t, 3, countMessages(m.page.Console().Entries(), "UNOPTIMIZED: row"))
}

func TestConsoleKeepsFiftyOfSixty(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	press(m, runes("c"))
	for i := 0; i < 60; i++ {
		m.render.Logf("burst %d", i)
	}
	// capture is deferred until the next interaction cycle
	assert.Equal(t, 0, m.page.Console().Len())
	press(m, tea.KeyMsg{Type: tea.KeyDown})

	entries := m.page.Console().Entries()
	require.Len(t, entries, 50)
	assert.Equal(t, "burst 10", entries[0].Message)
	assert.Equal(t, "burst 59", entries[49].Message)
}

func TestToggleAndClearConsole(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	press(m, runes("t"))
	assert.False(t, m.page.Console().Expanded())
	assert.NotZero(t, m.page.Console().Len())
	press(m, runes("c"), runes("c"))
	assert.Equal(t, 0, m.page.Console().Len())
}

func TestFilterInput(t *testing.T) {
	m := newTestModel(t, config.RouteOptimized)
	press(m, runes("f"))
	require.Equal(t, inlineFilter, m.inlineMode)
	press(m, runes("rating > 10"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, inlineNone, m.inlineMode)
	assert.Empty(t, m.tbl.Rows())
	assert.Equal(t, 3, m.page.Len())

	press(m, runes("F"))
	assert.Nil(t, m.page.Filter())
	assert.Len(t, m.tbl.Rows(), 3)
}

func TestFilterErrorKeepsPreviousFilter(t *testing.T) {
	m := newTestModel(t, config.RouteOptimized)
	press(m, runes("f"), runes("/(/"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.page.Filter())
	assert.Contains(t, m.lastMsg, "filter error")
}

func TestHelpModalRunsSelection(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	press(m, runes("?"))
	require.True(t, m.modalActive)
	assert.Contains(t, m.View(), "Shortcuts:")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.modalActive)
	require.NotNil(t, cmd)
	// first item is "Next page"
	press(m, cmd())
	assert.Equal(t, 1, m.routeIdx)
}

func TestAppLogsModal(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	press(m, runes("L"))
	require.True(t, m.modalActive)
	assert.Contains(t, m.modalBody, "route: /react-performance-playground/")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.modalActive)
}

func TestViewShowsNavigationAndTable(t *testing.T) {
	m := newTestModel(t, config.RouteOptimized)
	v := m.View()
	assert.Contains(t, v, "Optimized")
	assert.Contains(t, v, "/react-performance-playground/optimized")
	assert.Contains(t, v, "Total Dogs: 3")
	assert.Contains(t, v, "DevTools Console")
	for _, r := range m.page.Records() {
		assert.Contains(t, v, r.Name)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, config.RouteUnoptimized)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}
