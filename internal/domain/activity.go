package domain

import "time"

// Activity is one logged time interval. The model itself does not
// require StartTime < EndTime; the entry form refuses to save such a
// record, but a directly constructed activity with zero or negative
// duration is representable and flows through aggregation.
type Activity struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Memo      string
	Category  Category
	Priority  Priority
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration is the elapsed time between start and end.
func (a *Activity) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// DurationMinutes is the duration in whole minutes, truncated toward zero.
func (a *Activity) DurationMinutes() int {
	return int(a.Duration().Minutes())
}
