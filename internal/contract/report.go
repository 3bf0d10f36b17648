package contract

import (
	"time"

	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/stats"
)

// DayReportRequest selects the calendar day to report on.
type DayReportRequest struct {
	Date time.Time
}

// NewDayReportRequest returns a request for today.
func NewDayReportRequest() DayReportRequest {
	return DayReportRequest{Date: time.Now()}
}

// QuickStats is the headline row of the day report.
type QuickStats struct {
	TotalMinutes     int
	ActivityCount    int
	ActiveCategories int
}

// DayReport is everything the report and timeline renderers consume for
// one calendar day. Activities are sorted chronologically by StartTime.
type DayReport struct {
	Date       time.Time
	Activities []*domain.Activity

	Quick          QuickStats
	Categories     []stats.CategoryStat
	Priorities     []stats.PriorityStat // sparse, quadrant ascending
	Matrix         []stats.PriorityStat // zero-filled, always four entries
	QuadrantDetail []stats.QuadrantCategoryStat
	Pie            []stats.PieEntry
	PieAngles      []stats.SliceAngles
}
