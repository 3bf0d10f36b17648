package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ktsujino/quadlog/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
	clockLayout    = "15:04"

	// The entry form caps memos; the model itself does not.
	memoMaxLen = 200
)

// resolveDate parses a --date flag value. Empty means today.
func resolveDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// resolveClock parses a time flag value: either "HH:MM" on the given
// day or a full "YYYY-MM-DD HH:MM".
func resolveClock(s string, day time.Time) (time.Time, error) {
	if strings.Contains(s, " ") {
		t, err := time.ParseInLocation(dateTimeLayout, s, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q (want \"YYYY-MM-DD HH:MM\")", s)
		}
		return t, nil
	}
	clock, err := time.ParseInLocation(clockLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

// resolveCategory parses a --category flag value. Unlike decoding from
// storage, a typo on the command line is an error, not a fallback.
func resolveCategory(s string) (domain.Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range domain.AllCategories {
		if string(c) == key {
			return c, nil
		}
	}
	keys := make([]string, len(domain.AllCategories))
	for i, c := range domain.AllCategories {
		keys[i] = string(c)
	}
	return "", fmt.Errorf("unknown category %q (one of: %s)", s, strings.Join(keys, ", "))
}

// resolvePriority parses a --priority flag value: a quadrant number
// 1–4 or a storage key.
func resolvePriority(s string) (domain.Priority, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > 4 {
			return "", fmt.Errorf("quadrant %d out of range (1-4)", n)
		}
		return domain.PriorityForQuadrant(n), nil
	}
	for _, p := range domain.AllPriorities {
		if string(p) == trimmed {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q (a quadrant number 1-4 or a key like important_urgent)", s)
}

// validateClockInput is the huh validator for HH:MM fields.
func validateClockInput(s string) error {
	if _, err := time.ParseInLocation(clockLayout, s, time.Local); err != nil {
		return fmt.Errorf("want HH:MM")
	}
	return nil
}

// validateMemoInput enforces the entry form's memo length cap.
func validateMemoInput(s string) error {
	if len([]rune(s)) > memoMaxLen {
		return fmt.Errorf("memo is limited to %d characters", memoMaxLen)
	}
	return nil
}
