// Package parquet provides data structures and functions for exporting
// release statistics and series data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/plugtrend/schema"
	"github.com/parquet-go/parquet-go"
)

// Release represents one version release row in a parquet export.
type Release struct {
	// Plugin is the human-readable plugin name
	Plugin string `parquet:"plugin,snappy"`

	// Version is the release's version identifier
	Version string `parquet:"version,snappy"`

	// FirstSeenIndex is the series position where the version first appeared
	FirstSeenIndex int32 `parquet:"first_seen_index,snappy"`

	// ReleaseDownloads is the cumulative counter at the release boundary
	ReleaseDownloads int64 `parquet:"release_downloads,snappy"`

	// EndDownloads is the cumulative counter at the end of the active window
	EndDownloads int64 `parquet:"end_downloads,snappy"`

	// DownloadChange is the counter delta across the active window
	DownloadChange int64 `parquet:"download_change,snappy"`

	// DurationDays is the active window length in whole days
	DurationDays int32 `parquet:"duration_days,snappy"`

	// AvgDailyGrowth is the rounded mean daily counter delta
	AvgDailyGrowth int64 `parquet:"avg_daily_growth,snappy"`
}

// SeriesSnapshot represents one accepted snapshot row in a parquet export.
type SeriesSnapshot struct {
	// Plugin is the human-readable plugin name
	Plugin string `parquet:"plugin,snappy"`

	// Timestamp is the snapshot instant (nanosecond precision TIMESTAMP)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// TotalCount is the cumulative download counter
	TotalCount int64 `parquet:"total_count,snappy"`

	// DailyGrowth is the delta from the previous accepted snapshot
	DailyGrowth int64 `parquet:"daily_growth,snappy"`
}

// ReleaseRows converts a release result into parquet rows.
func ReleaseRows(result *schema.ReleaseResult) []Release {
	rows := make([]Release, 0, len(result.Releases))
	for _, r := range result.Releases {
		rows = append(rows, Release{
			Plugin:           result.Plugin,
			Version:          r.Version,
			FirstSeenIndex:   int32(r.FirstSeenIndex),
			ReleaseDownloads: int64(r.ReleaseDownloads),
			EndDownloads:     int64(r.EndDownloads),
			DownloadChange:   int64(r.DownloadChange),
			DurationDays:     int32(r.DurationDays),
			AvgDailyGrowth:   int64(r.AvgDailyGrowth),
		})
	}
	return rows
}

// SnapshotRows converts a normalized series into parquet rows.
func SnapshotRows(plugin string, series schema.Series) []SeriesSnapshot {
	rows := make([]SeriesSnapshot, 0, len(series))
	for _, snap := range series {
		rows = append(rows, SeriesSnapshot{
			Plugin:      plugin,
			Timestamp:   snap.Timestamp,
			TotalCount:  int64(snap.TotalCount),
			DailyGrowth: int64(snap.DailyGrowth),
		})
	}
	return rows
}

// WriteReleasesParquet writes release rows to a Parquet file.
func WriteReleasesParquet(data []Release, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the Release struct tags.
	writer := parquet.NewGenericWriter[Release](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteSnapshotsParquet writes series snapshot rows to a Parquet file.
func WriteSnapshotsParquet(data []SeriesSnapshot, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the SeriesSnapshot struct tags.
	writer := parquet.NewGenericWriter[SeriesSnapshot](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
