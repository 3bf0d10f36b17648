package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/stats"
)

const matrixCellWidth = 26

// FormatMatrix renders the 2×2 importance/urgency grid. Expects the
// zero-filled four-entry form (stats.FillQuadrants); quadrants with no
// activity show a dimmed "--". Layout follows the Eisenhower convention:
// urgency decreases left to right, importance top to bottom.
func FormatMatrix(matrix []stats.PriorityStat) string {
	byQuadrant := make(map[int]stats.PriorityStat, len(matrix))
	for _, m := range matrix {
		byQuadrant[m.Priority.Quadrant()] = m
	}

	topLeft := matrixCell(byQuadrant[1])
	topRight := matrixCell(byQuadrant[2])
	bottomLeft := matrixCell(byQuadrant[3])
	bottomRight := matrixCell(byQuadrant[4])

	var b strings.Builder
	b.WriteString(Dim(pad("", 2)) + Dim(pad("URGENT", matrixCellWidth+2)) + Dim("NOT URGENT") + "\n")
	b.WriteString(Dim("I ") + lipgloss.JoinHorizontal(lipgloss.Top, topLeft, "  ", topRight) + "\n")
	b.WriteString(Dim("─ ") + "\n")
	b.WriteString(Dim("N ") + lipgloss.JoinHorizontal(lipgloss.Top, bottomLeft, "  ", bottomRight) + "\n")
	return b.String()
}

func matrixCell(s stats.PriorityStat) string {
	style := PriorityStyle(s.Priority)

	title := style.Render(fmt.Sprintf("Q%d %s", s.Priority.Quadrant(), s.Priority.ShortLabel()))
	var value string
	if s.Minutes > 0 {
		value = StyleFg.Render(stats.FormatDuration(s.Minutes)) + Dim(fmt.Sprintf(" (%.1f%%)", s.Percentage))
	} else {
		value = Dim("--")
	}

	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Width(matrixCellWidth).
		PaddingLeft(1).
		PaddingRight(1)

	return cell.Render(title + "\n" + value)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// QuadrantTitle renders the long-form header for one quadrant section.
func QuadrantTitle(p domain.Priority) string {
	return PriorityStyle(p).Render(fmt.Sprintf("Quadrant %d — %s", p.Quadrant(), p.Label()))
}
