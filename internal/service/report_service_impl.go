package service

import (
	"context"

	"github.com/ktsujino/quadlog/internal/contract"
	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/stats"
)

type reportService struct {
	activities ActivityService
}

func NewReportService(activities ActivityService) ReportService {
	return &reportService{activities: activities}
}

// DayReport assembles every aggregate the report and timeline views
// consume for one calendar day.
func (s *reportService) DayReport(ctx context.Context, req contract.DayReportRequest) (*contract.DayReport, error) {
	activities, err := s.activities.ListForDay(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	pie := stats.PieData(activities)
	fractions := make([]float64, len(pie))
	for i, entry := range pie {
		fractions[i] = entry.Fraction
	}

	priorities := stats.ByPriority(activities)

	return &contract.DayReport{
		Date:       req.Date,
		Activities: activities,
		Quick: contract.QuickStats{
			TotalMinutes:     stats.TotalMinutes(activities),
			ActivityCount:    len(activities),
			ActiveCategories: countCategories(activities),
		},
		Categories:     stats.ByCategory(activities),
		Priorities:     priorities,
		Matrix:         stats.FillQuadrants(priorities),
		QuadrantDetail: stats.ByCategoryInQuadrant(activities),
		Pie:            pie,
		PieAngles:      stats.PieSliceAngles(fractions),
	}, nil
}

func countCategories(activities []*domain.Activity) int {
	seen := make(map[domain.Category]struct{})
	for _, a := range activities {
		seen[a.Category] = struct{}{}
	}
	return len(seen)
}
