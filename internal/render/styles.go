package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
)

// Styles
var (
	IndexStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = lipgloss.NewStyle()

	NAStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
