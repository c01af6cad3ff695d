package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha accents.
var (
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Red      = lipgloss.Color("#f38ba8")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red)
)
