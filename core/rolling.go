package core

import (
	"math"

	"github.com/huangsam/plugtrend/schema"
)

// Rolling window sizes used by the report.
const (
	WeeklyWindow  = 7
	MonthlyWindow = 30
)

// RollingAverage computes the trailing fixed-window mean of daily growth
// over a normalized series. Element i averages the window [max(0, i-w+1), i]
// rounded to the nearest integer, so early elements average over fewer than
// w samples rather than being padded. One output value is produced per input
// snapshot.
func RollingAverage(series schema.Series, window int) []schema.RollingPoint {
	if window < 1 || len(series) == 0 {
		return nil
	}

	points := make([]schema.RollingPoint, len(series))
	sum := 0
	for i, snap := range series {
		sum += snap.DailyGrowth
		if i >= window {
			sum -= series[i-window].DailyGrowth
		}
		count := min(i+1, window)
		points[i] = schema.RollingPoint{
			Timestamp: snap.Timestamp,
			Value:     int(math.Round(float64(sum) / float64(count))),
		}
	}
	return points
}
