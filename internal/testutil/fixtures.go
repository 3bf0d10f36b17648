package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ktsujino/quadlog/internal/domain"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithStart(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.StartTime = t
	}
}

func WithEnd(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.EndTime = t
	}
}

// WithInterval sets start and end from a start time and duration.
func WithInterval(start time.Time, d time.Duration) ActivityOption {
	return func(a *domain.Activity) {
		a.StartTime = start
		a.EndTime = start.Add(d)
	}
}

func WithMemo(memo string) ActivityOption {
	return func(a *domain.Activity) {
		a.Memo = memo
	}
}

func WithPriority(p domain.Priority) ActivityOption {
	return func(a *domain.Activity) {
		a.Priority = p
	}
}

// NewTestActivity creates an activity of the given category lasting one
// hour starting at the top of the current hour, overridable via options.
func NewTestActivity(category domain.Category, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC().Truncate(time.Hour)
	a := &domain.Activity{
		ID:        uuid.New().String(),
		StartTime: now,
		EndTime:   now.Add(time.Hour),
		Memo:      "",
		Category:  category,
		Priority:  domain.PriorityImportantNotUrgent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// At builds a same-day local time, convenient for day-boundary tests.
func At(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.Local)
}
