package ui

import "github.com/charmbracelet/lipgloss"

var (
	theme = DefaultTheme()

	Bold = lipgloss.NewStyle().Bold(true)

	Header = Bold.Foreground(theme.Emphasis)
	Error  = Bold.Foreground(theme.Error)
	Label  = lipgloss.NewStyle().Foreground(theme.Muted)
	Value  = lipgloss.NewStyle().Foreground(theme.Data)
)
