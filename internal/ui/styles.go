package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base       lipgloss.Style
	Title      lipgloss.Style
	Status     lipgloss.Style
	Banner     lipgloss.Style
	Help       lipgloss.Style
	Err        lipgloss.Style
	Warn       lipgloss.Style
	Good       lipgloss.Style
	NavActive  lipgloss.Style
	NavItem    lipgloss.Style
	Selected   lipgloss.Style
	FieldLabel lipgloss.Style
	TableHead  lipgloss.Style
	PopupBox   lipgloss.Style
	PopupTitle lipgloss.Style

	JSONKey    lipgloss.Style
	JSONString lipgloss.Style
	JSONNumber lipgloss.Style
	JSONBool   lipgloss.Style
	JSONNull   lipgloss.Style
	JSONPunct  lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.Err = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		s.Good = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
		s.NavActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.NavItem = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.FieldLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
		s.TableHead = lipgloss.NewStyle().Bold(true).Underline(true)
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.JSONKey = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
		s.JSONString = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
		s.JSONNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		s.JSONBool = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
		s.JSONNull = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
		s.JSONPunct = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Err = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		s.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		s.Good = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		s.NavActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.NavItem = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27"))
		s.FieldLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("25"))
		s.TableHead = lipgloss.NewStyle().Bold(true).Underline(true)
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.JSONKey = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
		s.JSONString = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		s.JSONNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		s.JSONBool = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
		s.JSONNull = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.JSONPunct = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return s
}
