package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktsujino/quadlog/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorIndigo = lipgloss.Color("#b16286")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleIndigo = lipgloss.NewStyle().Foreground(ColorIndigo)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// styleForName maps the color identifiers carried by the domain enums
// onto palette styles.
func styleForName(name string) lipgloss.Style {
	switch name {
	case "red":
		return StyleRed
	case "green":
		return StyleGreen
	case "yellow":
		return StyleYellow
	case "blue":
		return StyleBlue
	case "orange":
		return StyleOrange
	case "purple":
		return StylePurple
	case "indigo":
		return StyleIndigo
	case "gray":
		return StyleDim
	default:
		return StyleFg
	}
}

// CategoryStyle returns the style for a category's display color.
func CategoryStyle(c domain.Category) lipgloss.Style {
	return styleForName(c.Color())
}

// PriorityStyle returns the style for a quadrant's display color.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	return styleForName(p.Color())
}

// CategoryTag renders a colored "icon label" pair for a category.
func CategoryTag(c domain.Category) string {
	return CategoryStyle(c).Render(c.Icon() + " " + c.Label())
}

// PriorityPill renders a colored quadrant indicator like "● Q1 Do Now".
func PriorityPill(p domain.Priority) string {
	return PriorityStyle(p).Render(fmt.Sprintf("● Q%d %s", p.Quadrant(), p.ShortLabel()))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
