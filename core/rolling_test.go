package core

import (
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func growthSeries(values ...int) schema.Series {
	series := make(schema.Series, len(values))
	for i, v := range values {
		series[i] = schema.Snapshot{Timestamp: ts(i + 1), DailyGrowth: v, GrowthKnown: true}
	}
	return series
}

func rollingValues(points []schema.RollingPoint) []int {
	values := make([]int, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}

func TestRollingAverage_NarrowsAtStart(t *testing.T) {
	series := growthSeries(10, 20, 30)

	points := RollingAverage(series, WeeklyWindow)

	require.Len(t, points, 3)
	assert.Equal(t, []int{10, 15, 20}, rollingValues(points))
}

func TestRollingAverage_SlidesAfterWindowFills(t *testing.T) {
	series := growthSeries(10, 20, 30, 40)

	points := RollingAverage(series, 2)

	assert.Equal(t, []int{10, 15, 25, 35}, rollingValues(points))
}

func TestRollingAverage_RoundsToNearest(t *testing.T) {
	series := growthSeries(1, 2)

	points := RollingAverage(series, 2)

	// 1.5 rounds half away from zero.
	assert.Equal(t, []int{1, 2}, rollingValues(points))
}

func TestRollingAverage_TimestampsMatchSeries(t *testing.T) {
	series := growthSeries(5, 5, 5)

	points := RollingAverage(series, MonthlyWindow)

	for i, p := range points {
		assert.Equal(t, series[i].Timestamp, p.Timestamp)
	}
}

func TestRollingAverage_DegenerateInputs(t *testing.T) {
	assert.Nil(t, RollingAverage(nil, WeeklyWindow))
	assert.Nil(t, RollingAverage(growthSeries(1), 0))
}
