package styles

import (
	"github.com/charmbracelet/lipgloss"

	"jdex/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Tier colors
	AreaColor     = lipgloss.Color("#8B5CF6") // Violet
	CategoryColor = lipgloss.Color("#60A5FA") // Blue
	IDColor       = lipgloss.Color("#E5E7EB") // Light gray

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Breadcrumb = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Row styles
	RowArea = lipgloss.NewStyle().
		Bold(true).
		Foreground(AreaColor)

	RowCategory = lipgloss.NewStyle().
			Foreground(CategoryColor)

	RowID = lipgloss.NewStyle().
		Foreground(IDColor)

	RowSection = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	HelpKey = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)

// RowStyle returns the style for an entry of the given tier
func RowStyle(tier domain.Tier, section bool) lipgloss.Style {
	if section {
		return RowSection
	}
	switch tier {
	case domain.TierArea:
		return RowArea
	case domain.TierCategory:
		return RowCategory
	default:
		return RowID
	}
}
