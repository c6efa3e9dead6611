// Package styles provides the colors and lipgloss styles shared by the chat UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	ColorAccent = lipgloss.Color("141")

	ColorText      = lipgloss.Color("252") // Primary text
	ColorTextMuted = lipgloss.Color("245") // Secondary/muted text

	ColorError = lipgloss.Color("196")
	ColorUser  = lipgloss.Color("75")
	ColorNote  = lipgloss.Color("214")

	ColorBorder = lipgloss.Color("141")
)

var (
	// HeaderStyle is the one-line title bar
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	// UserLabelStyle marks the user's turns
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	// AssistantLabelStyle marks Jha's turns
	AssistantLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// NoticeStyle for local command feedback
	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorNote).
			Italic(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// TextStyle for normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// FooterStyle for footer/help text
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	// InputBoxStyle frames the message input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)
