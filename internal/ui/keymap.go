package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	NextRoute     tea.Key
	PrevRoute     tea.Key
	Unoptimized   tea.Key
	Optimized     tea.Key
	Add           tea.Key
	Remove        tea.Key
	RemoveAlt     tea.Key
	SortName      tea.Key
	SortBreed     tea.Key
	SortRating    tea.Key
	Filter        tea.Key
	ClearFilter   tea.Key
	ClearConsole  tea.Key
	ToggleConsole tea.Key
	AppLogs       tea.Key
	Help          tea.Key
	Quit          tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextRoute:     tea.Key{Type: tea.KeyTab},
		PrevRoute:     tea.Key{Type: tea.KeyShiftTab},
		Unoptimized:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'1'}},
		Optimized:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'2'}},
		Add:           tea.Key{Type: tea.KeyRunes, Runes: []rune{'a'}},
		Remove:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'d'}},
		RemoveAlt:     tea.Key{Type: tea.KeyDelete},
		SortName:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'n'}},
		SortBreed:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'b'}},
		SortRating:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'r'}},
		Filter:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		ClearFilter:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		ClearConsole:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'c'}},
		ToggleConsole: tea.Key{Type: tea.KeyRunes, Runes: []rune{'t'}},
		AppLogs:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Help:          tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		Quit:          tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
