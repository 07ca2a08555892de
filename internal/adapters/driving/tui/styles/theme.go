// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Surface is the fill behind badges and chips.
	Surface lipgloss.Color
}

// DefaultTheme returns the ember palette used by the directory.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F97316"),
		Secondary:  lipgloss.Color("#38BDF8"),
		Background: lipgloss.Color("#1C1917"),
		Foreground: lipgloss.Color("#E7E5E4"),
		Muted:      lipgloss.Color("#78716C"),
		Success:    lipgloss.Color("#4ADE80"),
		Warning:    lipgloss.Color("#FACC15"),
		Error:      lipgloss.Color("#EF4444"),
		Border:     lipgloss.Color("#44403C"),
		Surface:    lipgloss.Color("#292524"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// FocusedField style for the input or filter holding focus.
	FocusedField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// Card style for the summary figures.
	Card lipgloss.Style

	// CardValue style for the figure inside a card.
	CardValue lipgloss.Style

	// Section style for section headings.
	Section lipgloss.Style

	// Link style for outbound URLs.
	Link lipgloss.Style

	// Chip style for tags and quick filters.
	Chip lipgloss.Style

	// ActiveChip style for the selected quick filter.
	ActiveChip lipgloss.Style

	// BadgeActive style for the "Active" status.
	BadgeActive lipgloss.Style

	// BadgePaused style for the "Paused" status.
	BadgePaused lipgloss.Style

	// BadgeOther style for any other status.
	BadgeOther lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	badge := lipgloss.NewStyle().
		Bold(true).
		Background(theme.Surface).
		Padding(0, 1)

	chip := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Background(theme.Surface).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FocusedField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		CardValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Underline(true),

		Link: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Underline(true),

		Chip: chip,

		ActiveChip: chip.
			Foreground(theme.Foreground).
			Background(theme.Primary),

		BadgeActive: badge.Foreground(theme.Success),

		BadgePaused: badge.Foreground(theme.Warning),

		BadgeOther: badge.Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Badge returns the badge style for a status label.
func (s *Styles) Badge(status string) lipgloss.Style {
	switch domain.StatusBucketOf(status) {
	case domain.StatusBucketActive:
		return s.BadgeActive
	case domain.StatusBucketPaused:
		return s.BadgePaused
	default:
		return s.BadgeOther
	}
}

// RenderBadge renders a status label as a badge.
func (s *Styles) RenderBadge(status string) string {
	return s.Badge(status).Render(status)
}
