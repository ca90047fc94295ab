// Package console is the simulated developer console: it subscribes to a
// logger, queues what it captures and shows the most recent entries.
//
// Captured lines are never applied while a render pass is running. They wait
// in a pending queue until the owner calls Drain, once per interaction cycle.
package console

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"perfplayground/internal/model"
	"perfplayground/internal/util/logx"
)

const DefaultMaxLogs = 50

type Entry struct {
	ID        int
	Message   string
	Timestamp string
	Severity  logx.Level
}

// Source is anything a panel can subscribe to; *logx.Logger satisfies it.
type Source interface {
	Subscribe(logx.Sink) func()
}

type Panel struct {
	maxLogs  int
	entries  *model.Ring[Entry]
	nextID   int
	expanded bool

	mu      sync.Mutex
	pending []pendingEntry

	unsubscribe func()
}

type pendingEntry struct {
	message   string
	timestamp string
	severity  logx.Level
}

func New(maxLogs int) *Panel {
	if maxLogs < 1 {
		maxLogs = DefaultMaxLogs
	}
	return &Panel{
		maxLogs:  maxLogs,
		entries:  model.NewRing[Entry](maxLogs),
		expanded: true,
	}
}

// Mount starts capturing from src. A mounted panel is unmounted first.
func (p *Panel) Mount(src Source) {
	p.Unmount()
	p.unsubscribe = src.Subscribe(p)
}

// Unmount stops capturing. Safe to call at any time.
func (p *Panel) Unmount() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *Panel) Mounted() bool { return p.unsubscribe != nil }

// Capture implements logx.Sink. It only queues.
func (p *Panel) Capture(l logx.Line) {
	e := pendingEntry{message: l.Text, timestamp: l.When.Format("15:04:05"), severity: l.Level}
	p.mu.Lock()
	p.pending = append(p.pending, e)
	p.mu.Unlock()
}

// Pending reports how many captured lines are waiting for Drain.
func (p *Panel) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Drain applies queued lines to the visible entries and returns how many
// were applied.
func (p *Panel) Drain() int {
	p.mu.Lock()
	queued := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, q := range queued {
		p.entries.Push(Entry{ID: p.nextID, Message: q.message, Timestamp: q.timestamp, Severity: q.severity})
		p.nextID++
	}
	return len(queued)
}

// Clear empties the console, including anything not yet drained.
func (p *Panel) Clear() {
	p.mu.Lock()
	p.pending = nil
	p.mu.Unlock()
	p.entries.Clear()
}

func (p *Panel) Toggle()            { p.expanded = !p.expanded }
func (p *Panel) SetExpanded(v bool) { p.expanded = v }
func (p *Panel) Expanded() bool     { return p.expanded }
func (p *Panel) MaxLogs() int       { return p.maxLogs }
func (p *Panel) Len() int           { return p.entries.Len() }

// Entries returns the retained entries, oldest first.
func (p *Panel) Entries() []Entry { return p.entries.Snapshot() }

var (
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#333333")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9cdcfe"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Background(lipgloss.Color("#333333")).Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	tsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	levelStyles = map[logx.Level]lipgloss.Style{
		logx.Log:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0")),
		logx.Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#42a5f5")),
		logx.Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa726")),
		logx.Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
	}
)

// View renders the panel into at most height lines of the given width.
// When expanded the newest entries are shown, scrolled to the bottom.
func (p *Panel) View(width, height int) string {
	if width < 20 {
		width = 20
	}
	inner := width - 4 // border + padding

	arrow := "▼"
	if !p.expanded {
		arrow = "▶"
	}
	header := fmt.Sprintf("%s %s  %s",
		titleStyle.Render("🔧 DevTools Console (Simulated)"),
		badgeStyle.Render(fmt.Sprintf("%d logs", p.Len())),
		hintStyle.Render("[c]=clear [t]="+arrow),
	)
	if !p.expanded {
		return boxStyle.Width(width - 2).Render(header)
	}

	rows := height - 3 // border top/bottom + header
	if rows < 1 {
		rows = 1
	}
	entries := p.Entries()
	var lines []string
	if len(entries) == 0 {
		lines = append(lines, emptyStyle.Render("Console is empty. Interact with the page to see render logs..."))
	} else {
		if len(entries) > rows {
			entries = entries[len(entries)-rows:]
		}
		msgWidth := inner - 10
		if msgWidth < 10 {
			msgWidth = 10
		}
		for _, e := range entries {
			msg := runewidth.Truncate(strings.ReplaceAll(e.Message, "\n", " "), msgWidth, "…")
			lines = append(lines, tsStyle.Render(fmt.Sprintf("%-9s", e.Timestamp))+" "+levelStyles[e.Severity].Render(msg))
		}
	}
	return boxStyle.Width(width - 2).Render(header + "\n" + strings.Join(lines, "\n"))
}
