package stats

import (
	"sort"

	"github.com/ktsujino/quadlog/internal/domain"
)

// PieEntry is one pie-ready category share. Fraction is the share of 1
// (not of 100), which is what slice geometry consumes directly.
type PieEntry struct {
	Category domain.Category
	Minutes  int
	Fraction float64
}

// SliceAngles is the arc of one pie slice in degrees. Zero degrees
// points right; the −90 offset used throughout rotates slice zero to
// 12 o'clock, so a full circle spans −90 to 270.
type SliceAngles struct {
	StartDegrees float64
	EndDegrees   float64
}

// PieData prepares the category pie input: groups with zero minutes are
// dropped (a zero-width slice renders as nothing but still steals a
// legend row), fractions are of the total, order is descending minutes
// with declaration-order ties. A non-positive total yields zero
// fractions; negative durations can cancel positive ones, and a group
// may stay positive while the total hits zero.
func PieData(activities []*domain.Activity) []PieEntry {
	total := TotalMinutes(activities)

	grouped := make(map[domain.Category]int)
	for _, a := range activities {
		grouped[a.Category] += a.DurationMinutes()
	}

	entries := make([]PieEntry, 0, len(grouped))
	for cat, minutes := range grouped {
		if minutes <= 0 {
			continue
		}
		frac := 0.0
		if total > 0 {
			frac = float64(minutes) / float64(total)
		}
		entries = append(entries, PieEntry{
			Category: cat,
			Minutes:  minutes,
			Fraction: frac,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Minutes != entries[j].Minutes {
			return entries[i].Minutes > entries[j].Minutes
		}
		return entries[i].Category.DeclIndex() < entries[j].Category.DeclIndex()
	})
	return entries
}

// PieSliceAngles converts ordered fractions (shares of 1) into slice
// arcs. Slice i runs from the cumulative sum before i to the cumulative
// sum through i, scaled to 360° and offset by −90°. The running sum is
// shared between neighbors, so EndDegrees[i] == StartDegrees[i+1]
// exactly — no gaps or overlaps regardless of the caller's ordering.
func PieSliceAngles(fractions []float64) []SliceAngles {
	slices := make([]SliceAngles, len(fractions))
	cum := 0.0
	for i, f := range fractions {
		start := cum*360 - 90
		cum += f
		end := cum*360 - 90
		slices[i] = SliceAngles{StartDegrees: start, EndDegrees: end}
	}
	return slices
}
