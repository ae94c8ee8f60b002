// Package tui holds the shared color palette and text styles for mansect's
// terminal output. Commands normally go through iostreams.ColorScheme; this
// package is the single place the raw lipgloss styles live.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent across all terminal output
var (
	ColorSuccess = lipgloss.Color("#04B575")
	ColorWarning = lipgloss.Color("#FFCC00")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")
	ColorInfo    = lipgloss.Color("#87CEEB")
)

// Common text styles
var (
	BoldStyle    = lipgloss.NewStyle().Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
)
