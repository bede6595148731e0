// Package schema has models, enums and shared constants for all parts of plugtrend.
package schema

import "time"

// Snapshot is one point-in-time observation of a plugin's cumulative download
// counter, together with its per-version breakdown at that instant.
type Snapshot struct {
	Timestamp   time.Time // Commit timestamp of the revision the snapshot came from
	TotalCount  int       // Cumulative download counter (non-decreasing in an accepted series)
	DailyGrowth int       // Difference from the prior accepted snapshot's TotalCount
	GrowthKnown bool      // Whether DailyGrowth was present in the source or has been computed

	// VersionCounts maps version identifiers to per-version cumulative counts.
	// Reserved record keys (downloads, updated, dailyGrowth) never appear here.
	VersionCounts map[string]int
}

// Series is a chronologically ordered sequence of snapshots with strictly
// increasing timestamps. A normalized series is immutable downstream.
type Series []Snapshot

// VersionRelease describes one version's active window in the series and the
// growth statistics derived from it. Instances are created during the
// discovery pass and fully computed during boundary resolution; they are
// immutable afterwards.
type VersionRelease struct {
	Version          string `json:"version"`
	FirstSeenIndex   int    `json:"firstSeenIndex"`
	ReleaseDownloads int    `json:"releaseDownloads"`
	EndDownloads     int    `json:"endDownloads"`
	DownloadChange   int    `json:"downloadChange"`
	DurationDays     int    `json:"durationDays"`
	AvgDailyGrowth   int    `json:"avgDailyGrowth"`
}

// RollingPoint is one element of a rolling-average series.
type RollingPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}

// ReleaseResult holds everything the releases command derives from a series.
type ReleaseResult struct {
	Plugin   string           `json:"plugin"`
	Releases []VersionRelease `json:"releases"`
}

// ReportData is the full input contract for the report assembler. All slices
// indexed by snapshot position are parallel to Timestamps.
type ReportData struct {
	Plugin         string            `json:"plugin"`
	Timestamps     []string          `json:"timestamps"` // ISO-8601
	TotalCounts    []int             `json:"totalCounts"`
	DailyGrowth    []int             `json:"dailyGrowth"`
	ActiveVersions []string          `json:"activeVersions"` // active version label per point
	Releases       []VersionRelease  `json:"releases"`
	Rolling7       []RollingPoint    `json:"rolling7"`
	Rolling30      []RollingPoint    `json:"rolling30"`
	VersionColors  map[string]string `json:"versionColors"` // version (and Initial) -> hex color
}

// Empty reports whether the series behind the report data had zero accepted
// snapshots. Consumers must render a "no data" state for it, not fail.
func (d *ReportData) Empty() bool {
	return len(d.Timestamps) == 0
}

// CacheStatus holds status information about the revision-record cache.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Location        string    `json:"location"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"totalEntries"`
	LastEntryTime   time.Time `json:"lastEntryTime,omitzero"`
	OldestEntryTime time.Time `json:"oldestEntryTime,omitzero"`
	TableSizeBytes  int64     `json:"tableSizeBytes"`
}
