package stats

import "fmt"

// FormatDuration renders whole minutes as "2h 5m", dropping a zero hour
// or minute component. Zero (or negative) minutes render as "--" so an
// empty slot is never mistaken for a measured zero-length duration.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "--"
	}
	h := minutes / 60
	m := minutes % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
