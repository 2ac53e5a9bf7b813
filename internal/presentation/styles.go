package presentation

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette - warm, photography-inspired
	primaryColor = lipgloss.Color("#E8A87C") // warm orange
	successColor = lipgloss.Color("#85DCB0") // mint green
	warningColor = lipgloss.Color("#F6AE2D") // amber warning
	errorColor   = lipgloss.Color("#E85D75") // soft red
	mutedColor   = lipgloss.Color("#6B7280") // gray
	dimTextColor = lipgloss.Color("#9CA3AF") // dim text

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	iconDone    = "✓"
	iconFailed  = "✗"
	iconPlanned = "·"
	iconSkipped = "○"
	iconArrow   = "→"
)
