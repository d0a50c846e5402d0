package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Time           lipgloss.Style
	State          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	SweepFrom      string
	SweepTo        string
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Time:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		State:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("63")).Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")).Padding(0, 1),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		SweepFrom:      "#5A56E0",
		SweepTo:        "#EE6FF8",
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),                                                                                                                            // Purple
		Time:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")), // White
		State:          lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),                                                                                 // Cyan
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Background(lipgloss.Color("235")).Padding(0, 1), // Comment
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),                                       // Pink
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		SweepFrom:      "#BD93F9",
		SweepTo:        "#FF79C6",
	},
}

// ThemeOrder is the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

// LookupTheme returns the named theme, falling back to the default one.
func LookupTheme(name string) (Theme, bool) {
	if t, ok := Themes[name]; ok {
		return t, true
	}
	return Themes["default"], false
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
