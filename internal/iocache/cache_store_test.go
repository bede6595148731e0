package iocache

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(revisionTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

func TestSQLiteStore_SetGetRoundtrip(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("my-plugin:abc123", []byte(`{"downloads":100}`), 1, 1709294400))

	value, version, ts, err := store.Get("my-plugin:abc123")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"downloads":100}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(1709294400), ts)
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := newSQLiteStore(t)

	_, _, _, err := store.Get("nope")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("key", []byte("old"), 1, 100))
	require.NoError(t, store.Set("key", []byte("new"), 2, 200))

	value, version, ts, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(200), ts)
}

func TestSQLiteStore_GetStatus(t *testing.T) {
	store := newSQLiteStore(t)
	require.NoError(t, store.Set("a", []byte("1"), 1, 100))
	require.NoError(t, store.Set("b", []byte("2"), 1, 200))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(200), status.LastEntryTime.Unix())
	assert.Equal(t, int64(100), status.OldestEntryTime.Unix())
	assert.Positive(t, status.TableSizeBytes)
}

func TestNoneBackendStore(t *testing.T) {
	store, err := NewCacheStore(revisionTable, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NoError(t, store.Set("key", []byte("value"), 1, 100))

	_, _, _, err = store.Get("key")
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Zero(t, status.TotalEntries)
}

func TestNewCacheStore_InvalidBackend(t *testing.T) {
	_, err := NewCacheStore(revisionTable, schema.CacheBackend("redis"), "")
	assert.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("revision_cache"))
	assert.NoError(t, validateTableName("_tmp1"))

	for _, name := range []string{"", "1table", "drop table; --", "bad-name"} {
		assert.Error(t, validateTableName(name), name)
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`revision_cache`", quoteTableName("revision_cache", schema.MySQLBackend))
	assert.Equal(t, `"revision_cache"`, quoteTableName("revision_cache", schema.SQLiteBackend))
	assert.Equal(t, `"revision_cache"`, quoteTableName("revision_cache", schema.PostgreSQLBackend))
}
