package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231"))

	workBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	breakBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)
