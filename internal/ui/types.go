package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"perfplayground/internal/config"
	"perfplayground/internal/grid"
	"perfplayground/internal/page"
	"perfplayground/internal/util/logx"
)

type route struct {
	path    string
	label   string
	variant page.Variant
}

var routes = []route{
	{path: config.RouteUnoptimized, label: "⚠️ Unoptimized", variant: page.Unoptimized},
	{path: config.RouteOptimized, label: "✅ Optimized", variant: page.Optimized},
}

func routeIndex(path string) int {
	for i, r := range routes {
		if r.path == path {
			return i
		}
	}
	return 0
}

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalLogs
)

type inlineMode int

const (
	inlineNone inlineMode = iota
	inlineFilter
)

type Model struct {
	ctx context.Context
	cfg *config.Config

	// render markers from the tables are written here; the mounted page's
	// console subscribes to it
	render *logx.Logger

	// Navigation
	routeIdx int
	page     *page.Shell
	view     grid.View

	// UI
	tbl         table.Model
	filterInput textinput.Model
	styles      Styles
	keymap      KeyMap
	termWidth   int
	termHeight  int

	// status
	lastMsg string

	// Modal popup
	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string

	// Help menu state
	helpItems []helpItem
	helpSel   int

	inlineMode inlineMode
}

type helpItem struct {
	group string
	text  string
	key   tea.Key
}

func keyCmd(k tea.Key) tea.Cmd {
	return func() tea.Msg {
		if k.Type == tea.KeyRunes {
			return tea.KeyMsg{Type: k.Type, Runes: k.Runes}
		}
		return tea.KeyMsg{Type: k.Type}
	}
}

func keyLabel(k tea.Key) string {
	switch k.Type {
	case tea.KeyRunes:
		if len(k.Runes) == 1 {
			r := k.Runes[0]
			if r == ' ' {
				return "space"
			}
			return string(r)
		}
		return strings.ToLower(string(k.Runes))
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	case tea.KeyTab:
		return "tab"
	case tea.KeyShiftTab:
		return "shift-tab"
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	case tea.KeyDelete:
		return "delete"
	default:
		return strings.ToLower(k.String())
	}
}
