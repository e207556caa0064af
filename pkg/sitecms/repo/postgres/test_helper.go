package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestDB represents a test database connection
type TestDB struct {
	Pool *pgxpool.Pool
	Repo *Repository
}

// NewTestDB connects to the database named by TEST_DATABASE_URL and runs the
// schema migration. Tests calling this are skipped when the variable is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping database test. Set TEST_DATABASE_URL to run.")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err, "Failed to connect to test database")

	err = pool.Ping(ctx)
	require.NoError(t, err, "Failed to ping test database")

	repo := NewWithPool(pool)
	require.NoError(t, repo.Migrate(ctx), "Failed to migrate test database")

	return &TestDB{Pool: pool, Repo: repo}
}

// Cleanup removes all test data from the database
func (db *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	// Children before parents.
	for _, table := range []string{"menu_items", "sections", "users", "config_entries", "site_config", "site_sections"} {
		_, err := db.Pool.Exec(ctx, "TRUNCATE "+table+" CASCADE")
		require.NoError(t, err, "Failed to truncate %s table", table)
	}
}

// Close closes the database connection
func (db *TestDB) Close(t *testing.T) {
	t.Helper()
	db.Pool.Close()
}

// RunTest runs a test with database setup and cleanup
func RunTest(t *testing.T, testFunc func(t *testing.T, db *TestDB)) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	db := NewTestDB(t)
	defer db.Close(t)

	db.Cleanup(t)
	testFunc(t, db)
}
