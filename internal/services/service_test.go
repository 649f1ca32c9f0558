package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pollwise/newsvote-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated, seeded database in a per-test temp dir.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedOptions(db))
	t.Cleanup(func() { db.Close() })
	return db
}
