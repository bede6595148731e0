package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/plugtrend/schema"
)

// Default values for configuration.
const (
	DefaultStatsFile   = "downloads.json"
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for a pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	Plugin     string // Human-readable plugin name as it appears in the stats file
	PluginSlug string // Machine-safe identifier derived from Plugin

	RepoPath  string // Absolute path to the Git repository tracking the stats file
	StatsFile string // Path of the tracked stats file, relative to the repo root
	DataDir   string // Directory for derived files (history, report)

	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Plugin         string `mapstructure:"plugin"`
	StatsFile      string `mapstructure:"stats-file"`
	DataDir        string `mapstructure:"data-dir"`
	Limit          int    `mapstructure:"limit"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// HistoryFilePath returns the path of the derived raw-series file for the
// configured plugin.
func (c *Config) HistoryFilePath() string {
	return filepath.Join(c.DataDir, c.PluginSlug+"-history.json")
}

// ReportFilePath returns the path of the rendered HTML report for the
// configured plugin.
func (c *Config) ReportFilePath() string {
	return filepath.Join(c.DataDir, c.PluginSlug+"-report.html")
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Git repository resolution is separate
// (ResolveRepoPath) because only the extraction path touches Git.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Plugin name and derived identifier ---
	cfg.Plugin = strings.TrimSpace(input.Plugin)
	if cfg.Plugin == "" {
		return fmt.Errorf("a plugin name is required; pass it with --plugin or set it in the config file")
	}
	cfg.PluginSlug = PluginSlug(cfg.Plugin)

	// --- 2. Simple fields ---
	cfg.StatsFile = strings.TrimSpace(input.StatsFile)
	if cfg.StatsFile == "" {
		cfg.StatsFile = DefaultStatsFile
	}
	cfg.DataDir = strings.TrimSpace(input.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 3. ResultLimit validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 4. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 5. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 6. Cache backend validation ---
	cfg.CacheBackend = schema.CacheBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateCacheConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	return nil
}

// ResolveRepoPath resolves the Git repository root for the stats file and
// normalizes the tracked-file path relative to it. Commands that never touch
// Git (releases, report) skip this step.
func ResolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, statErr := os.Stat(absSearchPath)
	gitContextPath := absSearchPath
	if statErr == nil && !info.IsDir() {
		gitContextPath = filepath.Dir(absSearchPath)
	}

	gitRoot, err := client.GetRepoRoot(ctx, gitContextPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot

	// Normalize the stats-file path the way Git expects it.
	normalized := strings.ReplaceAll(filepath.Clean(cfg.StatsFile), string(filepath.Separator), "/")
	if strings.HasPrefix(normalized, "..") {
		return fmt.Errorf("stats file path is outside repository: %s", cfg.StatsFile)
	}
	cfg.StatsFile = strings.TrimPrefix(normalized, "./")

	return nil
}

// ValidateCacheConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateCacheConnectionString(backend schema.CacheBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
