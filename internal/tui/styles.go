package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	outgoingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	incomingStyle    = lipgloss.NewStyle()
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)
