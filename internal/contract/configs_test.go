package contract

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Plugin:       "My Plugin",
		Limit:        DefaultResultLimit,
		Output:       "text",
		Color:        "yes",
		CacheBackend: "sqlite",
	}
}

func TestProcessAndValidate_Success(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validInput())

	require.NoError(t, err)
	assert.Equal(t, "My Plugin", cfg.Plugin)
	assert.Equal(t, "my-plugin", cfg.PluginSlug)
	assert.Equal(t, DefaultStatsFile, cfg.StatsFile)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidate_MissingPlugin(t *testing.T) {
	input := validInput()
	input.Plugin = "   "

	err := ProcessAndValidate(&Config{}, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin name is required")
}

func TestProcessAndValidate_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1, MaxResultLimit + 1} {
		input := validInput()
		input.Limit = limit
		err := ProcessAndValidate(&Config{}, input)
		assert.Error(t, err)
	}
}

func TestProcessAndValidate_InvalidOutput(t *testing.T) {
	input := validInput()
	input.Output = "yaml"

	err := ProcessAndValidate(&Config{}, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestProcessAndValidate_InvalidColor(t *testing.T) {
	input := validInput()
	input.Color = "maybe"

	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestProcessAndValidate_InvalidCacheBackend(t *testing.T) {
	input := validInput()
	input.CacheBackend = "redis"

	err := ProcessAndValidate(&Config{}, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cache backend")
}

func TestProcessAndValidate_MySQLNeedsConnString(t *testing.T) {
	input := validInput()
	input.CacheBackend = "mysql"

	assert.Error(t, ProcessAndValidate(&Config{}, input))

	input.CacheDBConnect = "user:pass@tcp(localhost:3306)/cache"
	assert.NoError(t, ProcessAndValidate(&Config{}, input))
}

func TestProcessAndValidate_PostgresNeedsConnString(t *testing.T) {
	input := validInput()
	input.CacheBackend = "postgresql"
	input.CacheDBConnect = "host=localhost"

	assert.Error(t, ProcessAndValidate(&Config{}, input))

	input.CacheDBConnect = "host=localhost dbname=cache"
	assert.NoError(t, ProcessAndValidate(&Config{}, input))
}

func TestDerivedFilePaths(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.DataDir = "/tmp/data"
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, filepath.Join("/tmp/data", "my-plugin-history.json"), cfg.HistoryFilePath())
	assert.Equal(t, filepath.Join("/tmp/data", "my-plugin-report.html"), cfg.ReportFilePath())
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Plugin: "My Plugin", ResultLimit: 10}
	clone := cfg.Clone()
	clone.ResultLimit = 99

	assert.Equal(t, 10, cfg.ResultLimit)
	assert.Equal(t, "My Plugin", clone.Plugin)
}
