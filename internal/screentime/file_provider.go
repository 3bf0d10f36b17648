package screentime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNoReport is returned when the collaborator has no report for the
// requested day.
var ErrNoReport = errors.New("no screen-time report for day")

// FileProvider reads reports from a JSON export file. The file holds an
// array of Report objects, one per day. A missing or unreadable file
// means the facility is not authorized; that is a state, not an error.
type FileProvider struct {
	path string
}

// NewFileProvider creates a FileProvider reading from path. An empty
// path yields a provider that always reports NotAuthorized.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Status() Authorization {
	if p.path == "" {
		return NotAuthorized
	}
	if _, err := os.Stat(p.path); err != nil {
		return NotAuthorized
	}
	return Authorized
}

func (p *FileProvider) DayReport(ctx context.Context, date time.Time) (*Report, error) {
	if p.Status() != Authorized {
		return nil, fmt.Errorf("screen-time access: %w", ErrNoReport)
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("reading screen-time export: %w", err)
	}

	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decoding screen-time export: %w", err)
	}

	day := date.Format("2006-01-02")
	for i := range reports {
		if reports[i].Date == day {
			return &reports[i], nil
		}
	}
	return nil, fmt.Errorf("screen-time report for %s: %w", day, ErrNoReport)
}
