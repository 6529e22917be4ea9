package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/tasker/internal/theme"
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.ColorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(theme.ColorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ColorPrimary).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorFg)

	boardStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.ColorHighlight)

	successStyle = lipgloss.NewStyle().
			Foreground(theme.ColorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(theme.ColorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(theme.ColorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(theme.ColorFg)
)
