package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ktsujino/quadlog/internal/db"
	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
}

func NewActivityService(activities repository.ActivityRepo, uow db.UnitOfWork) ActivityService {
	return &activityService{activities: activities, uow: uow}
}

func (s *activityService) Create(ctx context.Context, fields ActivityFields) (*domain.Activity, error) {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:        uuid.New().String(),
		StartTime: fields.StartTime,
		EndTime:   fields.EndTime,
		Memo:      fields.Memo,
		Category:  fields.Category,
		Priority:  fields.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

// ListForDay returns the day's activities in chronological order. The
// repo already orders by start_time, but the timeline contract is
// chronological regardless of storage order, so sort here.
func (s *activityService) ListForDay(ctx context.Context, date time.Time) ([]*domain.Activity, error) {
	activities, err := s.activities.ListForDay(ctx, date)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime.Before(activities[j].StartTime)
	})
	return activities, nil
}

func (s *activityService) ListRecent(ctx context.Context, days int) ([]*domain.Activity, error) {
	return s.activities.ListRecent(ctx, days)
}

// Update overwrites the five user-editable fields of an existing
// activity. The read and write share one transaction so a concurrent
// delete can't turn the overwrite into a resurrection.
func (s *activityService) Update(ctx context.Context, id string, fields ActivityFields) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)

		a, err := txActivities.GetByID(ctx, id)
		if err != nil {
			return err
		}

		a.StartTime = fields.StartTime
		a.EndTime = fields.EndTime
		a.Memo = fields.Memo
		a.Category = fields.Category
		a.Priority = fields.Priority
		a.UpdatedAt = time.Now().UTC()

		return txActivities.Update(ctx, a)
	})
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}
