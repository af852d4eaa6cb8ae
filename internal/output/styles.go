package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI;
// never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, options.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" and "passed" statuses.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "missing" status (already absent targets).
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for the "removed" status.
	colorRed = lipgloss.Color("196")

	// colorBoldRed is used for the "failed" status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, options).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (baking, pruning, verifying).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Path status constants.
const (
	StatusCreated = "created"
	StatusRemoved = "removed"
	StatusMissing = "missing"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a given path status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusPassed:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusMissing:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(colorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column before the
// status suffix, so status words line up.
const minPathColumnWidth = 48

// FormatPathLine renders a project-relative path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
func FormatPathLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message for stdout output.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(colorBoldRed).Render("✘")
	return cross + " " + msg
}

// checkLabelWidth aligns check details to a common column.
const checkLabelWidth = 40

// FormatCheck renders a passed check line: checkmark, label, and an
// optional dim detail aligned to a common column.
func FormatCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := checkLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}
