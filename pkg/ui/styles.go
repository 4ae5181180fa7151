package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	HeadingColor = lipgloss.Color("#7D56F4")
	TextColor    = lipgloss.Color("#FAFAFA")
	MutedColor   = lipgloss.Color("#626262")
	AccentColor  = lipgloss.Color("#04B575")
	ErrorColor   = lipgloss.Color("#FF5F87")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	HandleStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
