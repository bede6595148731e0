package cmd

import (
	"fmt"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/internal/iocache"
	"github.com/huangsam/plugtrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateCacheConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by pipeline commands. This avoids plugin and Git
// validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the revision-record cache (improves performance)",
	Long: `Manage the revision-record cache that speeds up repeated extractions.

Plugtrend caches the parsed stats record per commit to avoid re-reading every
revision of the stats file on every run. Only revisions that appeared since
the last extraction need fresh Git reads.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Apply schema migrations to the cache database

Examples:
  # Check cache status
  plugtrend cache status

  # Clear cache after the stats repository was rewritten
  plugtrend cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached revision records",
	Long: `Delete all cached revision records from the configured backend.

Use this when:
- Repository history was rewritten (rebase, force push)
- Cache may be stale or corrupted
- Testing performance without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  plugtrend cache clear

  # Clear MySQL cache (set connection string via env variable)
  PLUGTREND_CACHE_BACKEND=mysql PLUGTREND_CACHE_DB_CONNECT="..." plugtrend cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the revision-record cache.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  plugtrend cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetRevisionStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd applies schema migrations to the cache database.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the cache database",
	Long: `Run schema migrations against the configured cache backend.

By default this migrates to the latest version. Use --target-version to
migrate to a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest schema
  plugtrend cache migrate

  # Roll back all migrations
  plugtrend cache migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migration manages connections itself; only load config here.
		if err := loadConfigFile(); err != nil {
			return err
		}
		backend := schema.CacheBackend(viper.GetString("cache-backend"))
		connStr := viper.GetString("cache-db-connect")
		if err := contract.ValidateCacheConnectionString(backend, connStr); err != nil {
			return err
		}
		cfg.CacheBackend = backend
		cfg.CacheDBConnect = connStr
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate cache", err)
		}
	},
}
