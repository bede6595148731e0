package core

import (
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportData_ParallelSlices(t *testing.T) {
	series := NormalizeSeries(schema.Series{
		snap(1, 100, map[string]int{"1.0.0": 100}),
		snap(2, 250, map[string]int{"1.1.0": 50}),
		snap(3, 340, map[string]int{"1.1.0": 140}),
	})

	data := BuildReportData("My Plugin", series)

	assert.Equal(t, "My Plugin", data.Plugin)
	require.Len(t, data.Timestamps, 3)
	require.Len(t, data.TotalCounts, 3)
	require.Len(t, data.DailyGrowth, 3)
	require.Len(t, data.ActiveVersions, 3)
	require.Len(t, data.Rolling7, 3)
	require.Len(t, data.Rolling30, 3)

	assert.Equal(t, "2024-03-01T12:00:00Z", data.Timestamps[0])
	assert.Equal(t, []int{100, 250, 340}, data.TotalCounts)
	assert.Equal(t, []string{"1.0.0", "1.1.0", "1.1.0"}, data.ActiveVersions)

	require.Len(t, data.Releases, 2)
	assert.Contains(t, data.VersionColors, schema.InitialLabel)
	assert.Contains(t, data.VersionColors, "1.0.0")
	assert.Contains(t, data.VersionColors, "1.1.0")
	assert.False(t, data.Empty())
}

func TestBuildReportData_EmptySeries(t *testing.T) {
	data := BuildReportData("My Plugin", nil)

	assert.True(t, data.Empty())
	assert.Empty(t, data.Releases)
	assert.Empty(t, data.Rolling7)
	assert.Equal(t, schema.InitialColor, data.VersionColors[schema.InitialLabel])
}
