// Package screentime surfaces device screen-time reports produced by an
// external collaborator. Reports arrive pre-aggregated; this package
// passes them through for display and never feeds them into activity
// statistics.
package screentime

import (
	"context"
	"time"
)

// Authorization is the collaborator's reported permission state.
type Authorization string

const (
	Authorized    Authorization = "authorized"
	NotAuthorized Authorization = "not_authorized"
)

// Entry is one app's pre-rendered usage line. Usage is display text
// produced by the collaborator ("1h 20m"); it is never parsed here.
type Entry struct {
	App      string `json:"app"`
	Category string `json:"category"`
	Usage    string `json:"usage"`
	Icon     string `json:"icon"`
}

// Report is the collaborator's usage summary for one day.
type Report struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	TotalUsage string  `json:"total_usage"`
	Entries    []Entry `json:"entries"`
}

// Provider is the boundary to the device's screen-time facility.
type Provider interface {
	Status() Authorization
	DayReport(ctx context.Context, date time.Time) (*Report, error)
}
