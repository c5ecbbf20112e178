package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the dashboard.
type Theme struct {
	Box         lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	Hotkey      lipgloss.Style
	Active      lipgloss.Style
	Separator   lipgloss.Style
	Placeholder lipgloss.Style
	Input       lipgloss.Style
	Row         lipgloss.Style
	Highlight   lipgloss.Style
	Done        lipgloss.Style
	Error       lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	yellow := lipgloss.Color("3")
	border := lipgloss.Color("7")

	return Theme{
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border),
		Title:       lipgloss.NewStyle().Bold(true),
		Label:       lipgloss.NewStyle(),
		Hotkey:      lipgloss.NewStyle().Foreground(yellow).Underline(true),
		Active:      lipgloss.NewStyle().Foreground(yellow),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Input:       lipgloss.NewStyle(),
		Row:         lipgloss.NewStyle(),
		Highlight:   lipgloss.NewStyle().Foreground(yellow).Bold(true).Reverse(true),
		Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
