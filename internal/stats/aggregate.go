package stats

import (
	"sort"

	"github.com/ktsujino/quadlog/internal/domain"
)

// CategoryStat is the aggregated share of one category within a day.
// Percentage is on the 0–100 scale.
type CategoryStat struct {
	Category   domain.Category
	Minutes    int
	Percentage float64
}

// PriorityStat is the aggregated share of one quadrant within a day.
// Percentage is on the 0–100 scale.
type PriorityStat struct {
	Priority   domain.Priority
	Minutes    int
	Percentage float64
}

// QuadrantCategoryStat is the aggregated share of one (category, quadrant)
// pair. Percentage is against the grand total of all input activities,
// not the quadrant's subtotal.
type QuadrantCategoryStat struct {
	Category   domain.Category
	Quadrant   int
	Minutes    int
	Percentage float64
	Priority   domain.Priority
}

// TotalMinutes sums DurationMinutes over all activities. Zero for an
// empty list.
func TotalMinutes(activities []*domain.Activity) int {
	total := 0
	for _, a := range activities {
		total += a.DurationMinutes()
	}
	return total
}

// percentOf returns minutes as a 0–100 share of total, and 0 when the
// total is zero. Every grouping below routes its division through here
// so an all-zero day never produces NaN.
func percentOf(minutes, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(minutes) / float64(total) * 100
}

// ByCategory groups activities by category and returns each group's
// minutes and percentage share, descending by minutes. Equal-minute
// groups keep category declaration order.
func ByCategory(activities []*domain.Activity) []CategoryStat {
	total := TotalMinutes(activities)

	grouped := make(map[domain.Category]int)
	for _, a := range activities {
		grouped[a.Category] += a.DurationMinutes()
	}

	result := make([]CategoryStat, 0, len(grouped))
	for cat, minutes := range grouped {
		result = append(result, CategoryStat{
			Category:   cat,
			Minutes:    minutes,
			Percentage: percentOf(minutes, total),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].Category.DeclIndex() < result[j].Category.DeclIndex()
	})
	return result
}

// ByPriority groups activities by quadrant, ascending by quadrant
// number. Quadrants with no matching activities are absent; consumers
// that need all four call FillQuadrants.
func ByPriority(activities []*domain.Activity) []PriorityStat {
	total := TotalMinutes(activities)

	grouped := make(map[domain.Priority]int)
	for _, a := range activities {
		grouped[a.Priority] += a.DurationMinutes()
	}

	result := make([]PriorityStat, 0, len(grouped))
	for prio, minutes := range grouped {
		result = append(result, PriorityStat{
			Priority:   prio,
			Minutes:    minutes,
			Percentage: percentOf(minutes, total),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority.Quadrant() < result[j].Priority.Quadrant()
	})
	return result
}

// FillQuadrants expands a sparse ByPriority result to exactly four
// entries, quadrant ascending, inserting zero-valued entries for
// quadrants with no activities. The matrix view renders from this.
func FillQuadrants(sparse []PriorityStat) []PriorityStat {
	byPriority := make(map[domain.Priority]PriorityStat, len(sparse))
	for _, s := range sparse {
		byPriority[s.Priority] = s
	}

	full := make([]PriorityStat, 0, len(domain.AllPriorities))
	for _, p := range domain.AllPriorities {
		if s, ok := byPriority[p]; ok {
			full = append(full, s)
		} else {
			full = append(full, PriorityStat{Priority: p})
		}
	}
	return full
}

// ByCategoryInQuadrant groups activities by the (category, quadrant)
// pair. Percentages are against the grand total. Order: ascending
// quadrant, then descending minutes, ties by category declaration order.
func ByCategoryInQuadrant(activities []*domain.Activity) []QuadrantCategoryStat {
	total := TotalMinutes(activities)

	type pairKey struct {
		category domain.Category
		priority domain.Priority
	}
	grouped := make(map[pairKey]int)
	for _, a := range activities {
		grouped[pairKey{a.Category, a.Priority}] += a.DurationMinutes()
	}

	result := make([]QuadrantCategoryStat, 0, len(grouped))
	for key, minutes := range grouped {
		result = append(result, QuadrantCategoryStat{
			Category:   key.category,
			Quadrant:   key.priority.Quadrant(),
			Minutes:    minutes,
			Percentage: percentOf(minutes, total),
			Priority:   key.priority,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Quadrant != result[j].Quadrant {
			return result[i].Quadrant < result[j].Quadrant
		}
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].Category.DeclIndex() < result[j].Category.DeclIndex()
	})
	return result
}
