package ui

import "github.com/charmbracelet/lipgloss"

var (
	Green  = lipgloss.Color("10")
	Red    = lipgloss.Color("9")
	Gray   = lipgloss.Color("8")
	Purple = lipgloss.Color("99")
	Cyan   = lipgloss.Color("14")
)

// Theme provides semantic color access
type Theme struct {
	Success  lipgloss.Color
	Error    lipgloss.Color
	Muted    lipgloss.Color
	Emphasis lipgloss.Color
	Data     lipgloss.Color
}

// DefaultTheme returns the standard renderer color theme
func DefaultTheme() Theme {
	return Theme{
		Success:  Green,
		Error:    Red,
		Muted:    Gray,
		Emphasis: Purple,
		Data:     Cyan,
	}
}
