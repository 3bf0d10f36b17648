package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/stats"
)

const memoColumnWidth = 32

// FormatTimeline renders one day's activities as a chronological table.
func FormatTimeline(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No activities logged. Use \"quadlog add\" to log one.") + "\n"
	}

	rows := make([][]string, 0, len(activities))
	total := 0
	for _, a := range activities {
		total += a.DurationMinutes()
		rows = append(rows, []string{
			TruncID(a.ID),
			ClockRange(a.StartTime, a.EndTime),
			stats.FormatDuration(a.DurationMinutes()),
			CategoryTag(a.Category),
			PriorityPill(a.Priority),
			TruncMemo(a.Memo, memoColumnWidth),
		})
	}

	out := RenderTable([]string{"ID", "TIME", "DUR", "CATEGORY", "PRIORITY", "MEMO"}, rows)
	out += Dim(fmt.Sprintf("%d activities, %s total", len(activities), stats.FormatDuration(total))) + "\n"
	return out
}

// FormatRecent renders a multi-day range as per-day timelines, newest
// day first. Expects newest-first input; each day's activities are
// re-sorted chronologically before rendering.
func FormatRecent(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No activities logged in this range.") + "\n"
	}

	var b strings.Builder
	var day time.Time
	var group []*domain.Activity

	flush := func() {
		if len(group) == 0 {
			return
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime.Before(group[j].StartTime)
		})
		b.WriteString(Header(HumanDate(day)) + "\n")
		b.WriteString(FormatTimeline(group))
		b.WriteString("\n")
		group = nil
	}

	for _, a := range activities {
		local := a.StartTime.In(time.Local)
		d := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
		if len(group) > 0 && !d.Equal(day) {
			flush()
		}
		day = d
		group = append(group, a)
	}
	flush()

	return b.String()
}
