package service

import (
	"context"
	"testing"
	"time"

	"github.com/ktsujino/quadlog/internal/contract"
	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/repository"
	"github.com/ktsujino/quadlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportServiceSetup(t *testing.T) (ActivityService, ReportService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteActivityRepo(database)
	activities := NewActivityService(repo, testutil.NewTestUoW(database))
	return activities, NewReportService(activities)
}

func TestReportService_DayReport(t *testing.T) {
	activities, reports := reportServiceSetup(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := activities.Create(ctx, ActivityFields{
		StartTime: testutil.At(day, 9, 0),
		EndTime:   testutil.At(day, 10, 0),
		Category:  domain.CategoryWork,
		Priority:  domain.PriorityImportantUrgent,
	})
	require.NoError(t, err)
	_, err = activities.Create(ctx, ActivityFields{
		StartTime: testutil.At(day, 20, 0),
		EndTime:   testutil.At(day, 21, 30),
		Category:  domain.CategoryLearning,
		Priority:  domain.PriorityImportantNotUrgent,
	})
	require.NoError(t, err)

	report, err := reports.DayReport(ctx, contract.DayReportRequest{Date: day})
	require.NoError(t, err)

	assert.Equal(t, 150, report.Quick.TotalMinutes)
	assert.Equal(t, 2, report.Quick.ActivityCount)
	assert.Equal(t, 2, report.Quick.ActiveCategories)

	require.Len(t, report.Categories, 2)
	assert.Equal(t, domain.CategoryLearning, report.Categories[0].Category)
	assert.InDelta(t, 60.0, report.Categories[0].Percentage, 1e-9)

	// Sparse priorities cover only populated quadrants; the matrix is
	// always all four.
	assert.Len(t, report.Priorities, 2)
	require.Len(t, report.Matrix, 4)

	require.Len(t, report.Pie, 2)
	require.Len(t, report.PieAngles, 2)
	assert.Equal(t, -90.0, report.PieAngles[0].StartDegrees)
	assert.Equal(t, report.PieAngles[0].EndDegrees, report.PieAngles[1].StartDegrees)
	assert.InDelta(t, 270.0, report.PieAngles[1].EndDegrees, 1e-9)

	require.Len(t, report.Activities, 2)
	assert.True(t, report.Activities[0].StartTime.Before(report.Activities[1].StartTime))
}

func TestReportService_DayReport_EmptyDay(t *testing.T) {
	_, reports := reportServiceSetup(t)

	report, err := reports.DayReport(context.Background(), contract.NewDayReportRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Quick.TotalMinutes)
	assert.Equal(t, 0, report.Quick.ActivityCount)
	assert.Empty(t, report.Activities)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Pie)
	assert.Empty(t, report.PieAngles)
	require.Len(t, report.Matrix, 4)
	for _, q := range report.Matrix {
		assert.Equal(t, 0, q.Minutes)
	}
}
