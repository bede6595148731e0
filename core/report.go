package core

import (
	"time"

	"github.com/huangsam/plugtrend/schema"
)

// BuildReportData assembles the full report-assembler input from a
// normalized series: parallel timestamp/count/label lists, the semantically
// ordered release list, both rolling-average series and the per-version
// color assignment. An empty series yields an empty-but-valid report.
func BuildReportData(plugin string, series schema.Series) *schema.ReportData {
	releases := SegmentReleases(series)

	data := &schema.ReportData{
		Plugin:         plugin,
		Timestamps:     make([]string, 0, len(series)),
		TotalCounts:    make([]int, 0, len(series)),
		DailyGrowth:    make([]int, 0, len(series)),
		ActiveVersions: ActiveVersionLabels(series, releases),
		Releases:       releases,
		Rolling7:       RollingAverage(series, WeeklyWindow),
		Rolling30:      RollingAverage(series, MonthlyWindow),
		VersionColors:  VersionColors(releases),
	}
	for _, snap := range series {
		data.Timestamps = append(data.Timestamps, snap.Timestamp.UTC().Format(time.RFC3339))
		data.TotalCounts = append(data.TotalCounts, snap.TotalCount)
		data.DailyGrowth = append(data.DailyGrowth, snap.DailyGrowth)
	}
	return data
}
