package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Edit        tea.Key
	Rerun       tea.Key
	PrevPage    tea.Key
	NextPage    tea.Key
	ViewRaw     tea.Key
	ExportJSON  tea.Key
	ExportText  tea.Key
	Recent      tea.Key
	Build       tea.Key
	AppLogs     tea.Key
	Refine      tea.Key
	ClearRefine tea.Key
	CopyLine    tea.Key
	Help        tea.Key
	Quit        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:        tea.Key{Type: tea.KeyEnter},
		Rerun:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'r'}},
		PrevPage:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'['}},
		NextPage:    tea.Key{Type: tea.KeyRunes, Runes: []rune{']'}},
		ViewRaw:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'v'}},
		ExportJSON:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		ExportText:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'E'}},
		Recent:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'R'}},
		Build:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'B'}},
		AppLogs:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Refine:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		ClearRefine: tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		CopyLine:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'c'}},
		Help:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
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
