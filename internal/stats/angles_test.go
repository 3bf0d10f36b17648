package stats

import (
	"math/rand"
	"testing"

	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieData_DropsZeroGroupsAndSortsDescending(t *testing.T) {
	activities := []*domain.Activity{
		minuteActivity(domain.CategoryWork, domain.PriorityImportantUrgent, 60),
		minuteActivity(domain.CategoryLearning, domain.PriorityImportantNotUrgent, 90),
		minuteActivity(domain.CategoryExercise, domain.PriorityImportantNotUrgent, 0),
	}

	got := PieData(activities)
	require.Len(t, got, 2)

	assert.Equal(t, domain.CategoryLearning, got[0].Category)
	assert.InDelta(t, 0.6, got[0].Fraction, 1e-9)
	assert.Equal(t, domain.CategoryWork, got[1].Category)
	assert.InDelta(t, 0.4, got[1].Fraction, 1e-9)

	fracSum := got[0].Fraction + got[1].Fraction
	assert.InDelta(t, 1.0, fracSum, 1e-9)
}

func TestPieData_Empty(t *testing.T) {
	assert.Empty(t, PieData(nil))
}

func TestPieData_ZeroTotalKeepsFractionsFinite(t *testing.T) {
	// A negative duration can cancel a positive one, leaving a positive
	// group against a zero total. The fraction must stay defined.
	activities := []*domain.Activity{
		minuteActivity(domain.CategoryWork, domain.PriorityImportantUrgent, 30),
		minuteActivity(domain.CategoryLife, domain.PriorityNotImportantNotUrgent, -30),
	}
	require.Equal(t, 0, TotalMinutes(activities))

	got := PieData(activities)
	require.Len(t, got, 1)
	assert.Equal(t, domain.CategoryWork, got[0].Category)
	assert.Equal(t, 30, got[0].Minutes)
	assert.Equal(t, 0.0, got[0].Fraction)
}

func TestPieData_NegativeTotal(t *testing.T) {
	activities := []*domain.Activity{
		minuteActivity(domain.CategoryWork, domain.PriorityImportantUrgent, 10),
		minuteActivity(domain.CategoryLife, domain.PriorityNotImportantNotUrgent, -30),
	}

	got := PieData(activities)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Fraction)
}

func TestPieSliceAngles_FullCircle(t *testing.T) {
	got := PieSliceAngles([]float64{0.4, 0.35, 0.25})
	require.Len(t, got, 3)

	// The first slice starts at 12 o'clock.
	assert.Equal(t, -90.0, got[0].StartDegrees)
	// Fractions summing to 1 close the circle at 270.
	assert.InDelta(t, 270.0, got[2].EndDegrees, 1e-9)
}

func TestPieSliceAngles_AdjacentSlicesShareBoundaries(t *testing.T) {
	// Exact equality, not approximate: neighbors share one running sum.
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(8)
		fractions := make([]float64, n)
		for i := range fractions {
			fractions[i] = rng.Float64()
		}

		got := PieSliceAngles(fractions)
		require.Len(t, got, n)
		assert.Equal(t, -90.0, got[0].StartDegrees)
		for i := 0; i < n-1; i++ {
			assert.Equal(t, got[i].EndDegrees, got[i+1].StartDegrees)
		}
	}
}

func TestPieSliceAngles_Empty(t *testing.T) {
	assert.Empty(t, PieSliceAngles(nil))
}

func TestPieSliceAngles_SingleSlice(t *testing.T) {
	got := PieSliceAngles([]float64{1.0})
	require.Len(t, got, 1)
	assert.Equal(t, -90.0, got[0].StartDegrees)
	assert.InDelta(t, 270.0, got[0].EndDegrees, 1e-9)
}
