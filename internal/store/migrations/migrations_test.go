package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	// Versions are sorted and unique.
	for i := 1; i < len(migrations); i++ {
		require.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}
	require.Equal(t, 1, migrations[0].Version)
	require.Equal(t, "create_runs", migrations[0].Description)
}

func TestParseFilename(t *testing.T) {
	version, description, err := parseFilename("01_create_runs.sql")
	require.NoError(t, err)
	require.Equal(t, 1, version)
	require.Equal(t, "create_runs", description)

	_, _, err = parseFilename("no-version.sql")
	require.Error(t, err)

	_, _, err = parseFilename("xx_bad.sql")
	require.Error(t, err)
}

func TestRun_AppliesAndIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))

	// The runs table exists after migration.
	_, err := db.Exec("INSERT INTO runs (id, command, exit_code, duration_ms, started_at) VALUES ('x', 'cd', 0, 10, '2026-08-20T10:00:00Z')")
	require.NoError(t, err)

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.GreaterOrEqual(t, version, 1)

	// Running again applies nothing and loses nothing.
	require.NoError(t, Run(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count))
	require.Equal(t, 1, count)
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db := openTestDB(t)

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, version)
}
