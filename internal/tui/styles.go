package tui

import "github.com/charmbracelet/lipgloss"

var (
	Amber = lipgloss.Color("#FFB000")
	Green = lipgloss.Color("#33FF66")
	Red   = lipgloss.Color("#FF5555")
	Gray  = lipgloss.Color("#888888")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Amber)
	sectionStyle = lipgloss.NewStyle().Foreground(Gray).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(14)
	focusStyle   = lipgloss.NewStyle().Foreground(Amber)
	statusStyle  = lipgloss.NewStyle().Foreground(Green).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(Red).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Foreground(Gray).MarginTop(1)
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1).
			MarginTop(1)
)
