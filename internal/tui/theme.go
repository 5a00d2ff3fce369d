package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	HeaderHint  lipgloss.Style
	Label       lipgloss.Style
	Form        lipgloss.Style
	Button      lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	TeacherName lipgloss.Style
	Subject     lipgloss.Style
	Cost        lipgloss.Style
	Favorite    lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(0, 1),
		Border:      lipgloss.Color("99"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1),
		HeaderHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("189")).Background(lipgloss.Color("99")).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
		Form:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("35")).Bold(true).Padding(0, 2),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		CardFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1),
		TeacherName: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Subject:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
		Cost:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Favorite:    lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(0, 1),
		Border:      lipgloss.Color("62"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		HeaderHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Background(lipgloss.Color("62")).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Form:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")).Bold(true).Padding(0, 2),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		CardFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		TeacherName: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Subject:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Cost:        lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Favorite:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
