package outwriter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() schema.Series {
	return schema.Series{
		{
			Timestamp:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			TotalCount:  100,
			GrowthKnown: true,
		},
		{
			Timestamp:   time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
			TotalCount:  250,
			DailyGrowth: 150,
			GrowthKnown: true,
		},
	}
}

func TestPrintParquetReleaseResults_SeriesFollowsOutputFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &contract.Config{
		Plugin:     "My Plugin",
		PluginSlug: "my-plugin",
		OutputFile: filepath.Join(dir, "out.parquet"),
	}

	require.NoError(t, printParquetReleaseResults(sampleResult(), sampleSeries(), cfg))

	assert.FileExists(t, cfg.OutputFile)
	assert.FileExists(t, filepath.Join(dir, "my-plugin-series.parquet"))
}

func TestPrintParquetReleaseResults_DefaultsToDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &contract.Config{
		Plugin:     "My Plugin",
		PluginSlug: "my-plugin",
		DataDir:    dir,
	}

	require.NoError(t, printParquetReleaseResults(sampleResult(), sampleSeries(), cfg))

	assert.FileExists(t, filepath.Join(dir, "my-plugin-releases.parquet"))
	assert.FileExists(t, filepath.Join(dir, "my-plugin-series.parquet"))
}
