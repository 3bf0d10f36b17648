package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityTestSetup(t *testing.T) *SQLiteActivityRepo {
	t.Helper()
	return NewSQLiteActivityRepo(testutil.NewTestDB(t))
}

func TestActivityRepo_CreateAndGetByID(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	a := testutil.NewTestActivity(domain.CategoryWork,
		testutil.WithInterval(start, 90*time.Minute),
		testutil.WithMemo("Sprint planning"),
		testutil.WithPriority(domain.PriorityImportantUrgent),
	)
	require.NoError(t, repo.Create(ctx, a))

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, fetched.ID)
	assert.True(t, fetched.StartTime.Equal(start))
	assert.True(t, fetched.EndTime.Equal(start.Add(90*time.Minute)))
	assert.Equal(t, "Sprint planning", fetched.Memo)
	assert.Equal(t, domain.CategoryWork, fetched.Category)
	assert.Equal(t, domain.PriorityImportantUrgent, fetched.Priority)
	assert.Equal(t, 90, fetched.DurationMinutes())
}

func TestActivityRepo_GetByID_NotFound(t *testing.T) {
	repo := activityTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_Update(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	a := testutil.NewTestActivity(domain.CategoryLife)
	require.NoError(t, repo.Create(ctx, a))

	a.Memo = "Groceries"
	a.Category = domain.CategoryHobby
	a.Priority = domain.PriorityNotImportantUrgent
	require.NoError(t, repo.Update(ctx, a))

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", fetched.Memo)
	assert.Equal(t, domain.CategoryHobby, fetched.Category)
	assert.Equal(t, domain.PriorityNotImportantUrgent, fetched.Priority)
}

func TestActivityRepo_Update_NotFound(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	existing := testutil.NewTestActivity(domain.CategoryWork, testutil.WithMemo("keep me"))
	require.NoError(t, repo.Create(ctx, existing))

	ghost := testutil.NewTestActivity(domain.CategoryLife)
	err := repo.Update(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)

	// The existing row is untouched.
	fetched, err := repo.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", fetched.Memo)
}

func TestActivityRepo_Delete(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	a := testutil.NewTestActivity(domain.CategorySleep)
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_Delete_NotFound(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	existing := testutil.NewTestActivity(domain.CategoryWork)
	require.NoError(t, repo.Create(ctx, existing))

	err := repo.Delete(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, existing.ID)
	assert.NoError(t, err)
}

func TestActivityRepo_ListForDay(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	early := testutil.NewTestActivity(domain.CategorySleep,
		testutil.WithInterval(testutil.At(day, 0, 0), 7*time.Hour))
	morning := testutil.NewTestActivity(domain.CategoryWork,
		testutil.WithInterval(testutil.At(day, 9, 0), 2*time.Hour))
	late := testutil.NewTestActivity(domain.CategoryLife,
		testutil.WithInterval(testutil.At(day, 23, 59), time.Minute))
	prevDay := testutil.NewTestActivity(domain.CategoryWork,
		testutil.WithInterval(testutil.At(day.AddDate(0, 0, -1), 9, 0), time.Hour))
	nextMidnight := testutil.NewTestActivity(domain.CategoryWork,
		testutil.WithInterval(testutil.At(day.AddDate(0, 0, 1), 0, 0), time.Hour))

	for _, a := range []*domain.Activity{late, morning, early, prevDay, nextMidnight} {
		require.NoError(t, repo.Create(ctx, a))
	}

	list, err := repo.ListForDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Chronological order; neighbors on either side of midnight excluded.
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, morning.ID, list[1].ID)
	assert.Equal(t, late.ID, list[2].ID)
}

func TestActivityRepo_ListForDay_Empty(t *testing.T) {
	repo := activityTestSetup(t)

	list, err := repo.ListForDay(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestActivityRepo_ListRecent(t *testing.T) {
	repo := activityTestSetup(t)
	ctx := context.Background()

	recent := testutil.NewTestActivity(domain.CategoryWork,
		testutil.WithInterval(time.Now().Add(-2*time.Hour), time.Hour))
	older := testutil.NewTestActivity(domain.CategoryLife,
		testutil.WithInterval(time.Now().AddDate(0, 0, -3), time.Hour))
	ancient := testutil.NewTestActivity(domain.CategorySleep,
		testutil.WithInterval(time.Now().AddDate(0, 0, -30), 8*time.Hour))

	for _, a := range []*domain.Activity{older, recent, ancient} {
		require.NoError(t, repo.Create(ctx, a))
	}

	list, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first.
	assert.Equal(t, recent.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestActivityRepo_UnknownEnumKeysDecodeToFallbacks(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	// Simulate a row written by a newer schema with enum keys this
	// version doesn't know.
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := database.ExecContext(ctx,
		`INSERT INTO activities (id, start_time, end_time, memo, category, priority, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"future-row", now, now, "", "commute", "somewhat_important", now, now)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, "future-row")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLife, fetched.Category)
	assert.Equal(t, domain.PriorityNotImportantNotUrgent, fetched.Priority)
}
