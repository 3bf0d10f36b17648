package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'activities'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "activities", name)

	rows, err := database.Query(
		`SELECT name FROM sqlite_master WHERE type = 'index' AND tbl_name = 'activities' AND name LIKE 'idx_%'`,
	)
	require.NoError(t, err)
	defer rows.Close()

	var indexes []string
	for rows.Next() {
		var idx string
		require.NoError(t, rows.Scan(&idx))
		indexes = append(indexes, idx)
	}
	require.NoError(t, rows.Err())
	assert.ElementsMatch(t, []string{"idx_activities_start", "idx_activities_category"}, indexes)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// OpenDB already migrated once; running again must be a no-op.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}
