package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ktsujino/quadlog/internal/db"
	"github.com/ktsujino/quadlog/internal/domain"
)

// activityColumns is the canonical SELECT column list for activities.
const activityColumns = `id, start_time, end_time, memo, category, priority, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
// Timestamps are stored as UTC RFC3339 text so range predicates compare
// lexicographically; category and priority are stored by their stable
// string keys and decoded through the enum fallbacks on read.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, start_time, end_time, memo, category, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.StartTime.UTC().Format(time.RFC3339),
		a.EndTime.UTC().Format(time.RFC3339),
		a.Memo,
		string(a.Category),
		string(a.Priority),
		a.CreatedAt.UTC().Format(time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanActivity(row)
}

func (r *SQLiteActivityRepo) ListForDay(ctx context.Context, date time.Time) ([]*domain.Activity, error) {
	// Day bounds in the local calendar, converted to UTC for the query.
	local := date.In(time.Local)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		dayStart.UTC().Format(time.RFC3339),
		dayEnd.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing activities for day: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, days int) ([]*domain.Activity, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE start_time >= ?
		ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, cutoff.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities
		SET start_time = ?, end_time = ?, memo = ?, category = ?, priority = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.StartTime.UTC().Format(time.RFC3339),
		a.EndTime.UTC().Format(time.RFC3339),
		a.Memo,
		string(a.Category),
		string(a.Priority),
		a.UpdatedAt.UTC().Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanActivity scans a single activity from a *sql.Row.
func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.Activity, error) {
	var a domain.Activity
	var startStr, endStr, categoryKey, priorityKey, createdStr, updatedStr string

	err := row.Scan(&a.ID, &startStr, &endStr, &a.Memo, &categoryKey, &priorityKey, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	return r.populateActivity(&a, startStr, endStr, categoryKey, priorityKey, createdStr, updatedStr)
}

// scanActivities scans multiple activities from *sql.Rows.
func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var startStr, endStr, categoryKey, priorityKey, createdStr, updatedStr string

		err := rows.Scan(&a.ID, &startStr, &endStr, &a.Memo, &categoryKey, &priorityKey, &createdStr, &updatedStr)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}

		activity, parseErr := r.populateActivity(&a, startStr, endStr, categoryKey, priorityKey, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}

		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

// populateActivity fills in parsed fields on an Activity after scanning raw strings.
func (r *SQLiteActivityRepo) populateActivity(a *domain.Activity, startStr, endStr, categoryKey, priorityKey, createdStr, updatedStr string) (*domain.Activity, error) {
	var parseErr error
	a.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	a.EndTime, parseErr = time.Parse(time.RFC3339, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_time: %w", parseErr)
	}
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	a.Category = domain.ParseCategory(categoryKey)
	a.Priority = domain.ParsePriority(priorityKey)

	return a, nil
}
