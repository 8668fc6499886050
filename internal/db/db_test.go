package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-admin/internal/config"
)

func TestOpenSQLiteMigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.sqlite")

	conn, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	for _, table := range []string{"campaigns", "ad_groups", "ads", "programs"} {
		var n int
		err := conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s", table)
	}

	// running again must be a no-op
	require.NoError(t, Migrate(context.Background(), conn, config.DriverSQLite))

	var applied int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	conn, err := OpenSQLite(filepath.Join(t.TempDir(), "fk.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var on int
	require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&on))
	assert.Equal(t, 1, on)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (id INT);\n\n  CREATE INDEX i ON a(id);\n")
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX i ON a(id)"}, got)
}
