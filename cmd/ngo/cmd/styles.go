package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all subcommands.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // violet
	colorAccent  = lipgloss.Color("#06B6D4") // cyan
	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorError   = lipgloss.Color("#EF4444") // red
	colorMuted   = lipgloss.Color("#6B7280") // gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	kindStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
