package ui

import (
	"github.com/charmbracelet/lipgloss"

	"perfplayground/internal/page"
)

type Styles struct {
	Base        lipgloss.Style
	Status      lipgloss.Style
	Nav         lipgloss.Style
	NavTitle    lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Location    lipgloss.Style
	TitleBad    lipgloss.Style
	TitleGood   lipgloss.Style
	Banner      lipgloss.Style
	Help        lipgloss.Style
	Button      lipgloss.Style
	SortActive  lipgloss.Style
	SortIdle    lipgloss.Style
	Tone        map[page.Tone]lipgloss.Style
	TableStyles TableStyles
	PopupBox    lipgloss.Style
	PopupTitle  lipgloss.Style
}

type TableStyles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.Banner = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Banner = lipgloss.NewStyle().Foreground(lipgloss.Color("#0c5460"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
	}
	s.Nav = lipgloss.NewStyle().Background(lipgloss.Color("#333333")).Padding(0, 1)
	s.NavTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#333333")).MarginRight(2)
	s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2196F3")).Padding(0, 2).MarginRight(1)
	s.TabInactive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#607D8B")).Padding(0, 2).MarginRight(1)
	s.Location = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa")).Background(lipgloss.Color("#333333"))
	s.TitleBad = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e74c3c"))
	s.TitleGood = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#27ae60"))
	s.Button = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#4CAF50")).Padding(0, 1)
	s.SortActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2196F3")).Padding(0, 1)
	s.SortIdle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")).Padding(0, 1)
	s.Tone = map[page.Tone]lipgloss.Style{
		page.ToneWarning: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ffc107")).Foreground(lipgloss.Color("#ffc107")).Padding(0, 1),
		page.ToneSuccess: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#28a745")).Foreground(lipgloss.Color("#5cd65c")).Padding(0, 1),
		page.ToneInfo:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#17a2b8")).Foreground(lipgloss.Color("#5bc0de")).Padding(0, 1),
	}
	s.TableStyles = TableStyles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#4CAF50")).PaddingRight(1),
		Cell:     lipgloss.NewStyle().PaddingRight(1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
	}
	return s
}
