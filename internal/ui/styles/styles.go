// Package styles provides shared lipgloss styles for gwt's output.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used across commands.
var (
	// Success is used for checkmarks and positive indicators (green).
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for failures and missing paths (red).
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for secondary text like paths (gray).
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Accent highlights branch names (pink).
	Accent lipgloss.TerminalColor = lipgloss.Color("212")
)

// Common styles.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent)
	Bold         = lipgloss.NewStyle().Bold(true)
)

// Check renders a boolean as a colored ✓ or ✗.
func Check(ok bool) string {
	if ok {
		return SuccessStyle.Render("✓")
	}
	return ErrorStyle.Render("✗")
}
