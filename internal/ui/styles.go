package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("87")  // Cyan
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorError     = lipgloss.Color("160") // Red

	// Base Styles
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleID      = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleDone    = lipgloss.NewStyle().Foreground(ColorSuccess)
	StylePending = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
