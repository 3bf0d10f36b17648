package formatter

import (
	"fmt"
	"strings"

	"github.com/ktsujino/quadlog/internal/contract"
	"github.com/ktsujino/quadlog/internal/stats"
)

const shareBarWidth = 12

// FormatDayReport renders the full analytics view for one day: quick
// stats, category breakdown, the importance/urgency matrix, and the
// per-quadrant category detail.
func FormatDayReport(r *contract.DayReport) string {
	if len(r.Activities) == 0 {
		empty := fmt.Sprintf("No activities logged on %s.", HumanDate(r.Date))
		return RenderBox("Analytics", Dim(empty))
	}

	var b strings.Builder

	b.WriteString(formatQuickStats(r.Quick))
	b.WriteString("\n")

	b.WriteString(Header("By Category"))
	b.WriteString("\n")
	b.WriteString(formatCategoryStats(r.Categories))
	b.WriteString("\n")

	b.WriteString(Header("Priority Matrix"))
	b.WriteString("\n")
	b.WriteString(FormatMatrix(r.Matrix))
	b.WriteString("\n")

	b.WriteString(Header("Categories by Quadrant"))
	b.WriteString("\n")
	b.WriteString(formatQuadrantDetail(r.QuadrantDetail))

	return RenderBox("Analytics — "+HumanDate(r.Date), b.String())
}

func formatQuickStats(q contract.QuickStats) string {
	parts := []string{
		Bold(stats.FormatDuration(q.TotalMinutes)) + Dim(" total"),
		Bold(fmt.Sprintf("%d", q.ActivityCount)) + Dim(" activities"),
		Bold(fmt.Sprintf("%d", q.ActiveCategories)) + Dim(" categories"),
	}
	return strings.Join(parts, Dim("  ·  ")) + "\n"
}

func formatCategoryStats(cats []stats.CategoryStat) string {
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			CategoryTag(c.Category),
			stats.FormatDuration(c.Minutes),
			RenderShare(c.Percentage, shareBarWidth, CategoryStyle(c.Category)),
		})
	}
	return RenderTable([]string{"CATEGORY", "TIME", "SHARE"}, rows)
}

func formatQuadrantDetail(detail []stats.QuadrantCategoryStat) string {
	if len(detail) == 0 {
		return Dim("--") + "\n"
	}

	var b strings.Builder
	currentQuadrant := 0
	for _, d := range detail {
		if d.Quadrant != currentQuadrant {
			currentQuadrant = d.Quadrant
			b.WriteString(QuadrantTitle(d.Priority) + "\n")
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			CategoryTag(d.Category),
			stats.FormatDuration(d.Minutes),
			Dim(fmt.Sprintf("(%.1f%%)", d.Percentage)),
		))
	}
	return b.String()
}

// FormatPieLegend renders the pie entries with their slice arcs, the
// closest a terminal gets to the donut chart.
func FormatPieLegend(entries []stats.PieEntry, angles []stats.SliceAngles) string {
	if len(entries) == 0 {
		return Dim("--") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		arc := ""
		if i < len(angles) {
			arc = Dim(fmt.Sprintf("%.0f°..%.0f°", angles[i].StartDegrees, angles[i].EndDegrees))
		}
		rows = append(rows, []string{
			CategoryTag(e.Category),
			stats.FormatDuration(e.Minutes),
			fmt.Sprintf("%.1f%%", e.Fraction*100),
			arc,
		})
	}
	return RenderTable([]string{"SLICE", "TIME", "SHARE", "ARC"}, rows)
}
