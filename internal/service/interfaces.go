package service

import (
	"context"
	"time"

	"github.com/ktsujino/quadlog/internal/contract"
	"github.com/ktsujino/quadlog/internal/domain"
)

// ActivityFields are the five user-editable attributes of an activity.
// Update overwrites exactly these; identity and bookkeeping timestamps
// stay with the service.
type ActivityFields struct {
	StartTime time.Time
	EndTime   time.Time
	Memo      string
	Category  domain.Category
	Priority  domain.Priority
}

type ActivityService interface {
	Create(ctx context.Context, fields ActivityFields) (*domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListForDay(ctx context.Context, date time.Time) ([]*domain.Activity, error)
	// ListRecent returns activities started within the last N days,
	// newest first.
	ListRecent(ctx context.Context, days int) ([]*domain.Activity, error)
	Update(ctx context.Context, id string, fields ActivityFields) error
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	DayReport(ctx context.Context, req contract.DayReportRequest) (*contract.DayReport, error)
}
