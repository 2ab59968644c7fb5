package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	chipColor   = lipgloss.Color("#3A3A3A") // Dark gray chip background
	tagColor    = lipgloss.Color("#5F87AF") // Blue for tag chips
	folderColor = lipgloss.Color("#87875F") // Olive for the folder chip
	subtleColor = lipgloss.Color("#6C6C6C") // Gray for hints
	okColor     = lipgloss.Color("#87AF87") // Muted sage for positive verdicts

	// titleStyle for the canonical task title
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	// badgeStyle for parsed marker chips (due, reminder, recurrence, ...)
	badgeStyle = lipgloss.NewStyle().
			Background(chipColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// tagStyle for #tag chips
	tagStyle = lipgloss.NewStyle().
			Background(tagColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// folderStyle for the @folder chip
	folderStyle = lipgloss.NewStyle().
			Background(folderColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// subtleStyle for hints and negative verdicts
	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// okStyle for positive verdicts
	okStyle = lipgloss.NewStyle().
		Foreground(okColor)
)
