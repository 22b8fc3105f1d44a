package tui

import "github.com/charmbracelet/lipgloss"

var (
	errorColor = lipgloss.Color("196")

	reloadBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Background(lipgloss.Color("52")).
				Bold(true).
				Padding(0, 1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)
