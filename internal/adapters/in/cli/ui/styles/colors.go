// Package styles provides the terminal styling used by the platelens CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. AdaptiveColor picks the light or dark variant from the terminal background.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#2f855a", Dark: "#68d391"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#c05621", Dark: "#f6ad55"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#2f855a", Dark: "#68d391"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#b7791f", Dark: "#f6e05e"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#c53030", Dark: "#fc8181"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#2b6cb0", Dark: "#63b3ed"}

	ColorText      = lipgloss.AdaptiveColor{Light: "#1a202c", Dark: "#e2e8f0"}
	ColorTextMuted = lipgloss.AdaptiveColor{Light: "#718096", Dark: "#a0aec0"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#cbd5e0", Dark: "#4a5568"}
)
