package repository

import (
	"context"
	"time"

	"github.com/ktsujino/quadlog/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	// ListForDay returns activities whose StartTime falls on the same
	// local calendar day as date, ordered by start_time.
	ListForDay(ctx context.Context, date time.Time) ([]*domain.Activity, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}
