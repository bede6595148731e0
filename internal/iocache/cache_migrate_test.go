package iocache

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationFiles = []string{
	"000001_create_revision_cache.up.sql",
	"000001_create_revision_cache.down.sql",
	"000002_index_revision_cache_timestamp.up.sql",
	"000002_index_revision_cache_timestamp.down.sql",
}

func readMigration(t *testing.T, backend schema.CacheBackend, name string) string {
	t.Helper()
	migrationFS, err := migrationsForBackend(backend)
	require.NoError(t, err)
	data, err := fs.ReadFile(migrationFS, name)
	require.NoError(t, err)
	return string(data)
}

func TestMigrationsForBackend(t *testing.T) {
	backends := []schema.CacheBackend{
		schema.SQLiteBackend,
		schema.MySQLBackend,
		schema.PostgreSQLBackend,
	}
	for _, backend := range backends {
		migrationFS, err := migrationsForBackend(backend)
		require.NoError(t, err, backend)
		for _, name := range migrationFiles {
			_, statErr := fs.Stat(migrationFS, name)
			assert.NoError(t, statErr, "%s/%s", backend, name)
		}
	}

	_, err := migrationsForBackend(schema.NoneBackend)
	assert.Error(t, err)
}

func TestMigrationDialects(t *testing.T) {
	// PostgreSQL has no BLOB type; the migration must use BYTEA like the
	// store DDL in getCreateTableQuery does.
	createPG := readMigration(t, schema.PostgreSQLBackend, "000001_create_revision_cache.up.sql")
	assert.Contains(t, createPG, "BYTEA")
	assert.NotContains(t, createPG, "BLOB")

	// MySQL 8 rejects IF NOT EXISTS on CREATE INDEX and requires the ON
	// <table> clause for DROP INDEX.
	indexUpMySQL := readMigration(t, schema.MySQLBackend, "000002_index_revision_cache_timestamp.up.sql")
	assert.NotContains(t, indexUpMySQL, "IF NOT EXISTS")
	indexDownMySQL := readMigration(t, schema.MySQLBackend, "000002_index_revision_cache_timestamp.down.sql")
	assert.Contains(t, indexDownMySQL, "ON revision_cache")

	createMySQL := readMigration(t, schema.MySQLBackend, "000001_create_revision_cache.up.sql")
	assert.Contains(t, createMySQL, "VARCHAR(255)")
}

func TestMigrateCache_SQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, -1))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM revision_cache").Scan(&count))
	assert.Zero(t, count)

	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, 0))
	assert.Error(t, db.QueryRow("SELECT COUNT(*) FROM revision_cache").Scan(&count))
}

func TestMigrateCache_NoneBackendRejected(t *testing.T) {
	assert.Error(t, MigrateCache(schema.NoneBackend, "", -1))
}
