package core

import (
	"math"
	"sort"
	"time"

	"github.com/huangsam/plugtrend/schema"
)

// SegmentReleases derives the per-release statistics from a normalized
// series. It is a two-phase algorithm by design: a chronological discovery
// pass builds the release table in timeline order, then a semantically
// sorted view of that table drives all boundary and statistics computation.
// The returned list is in semantic order (oldest version first); an empty
// series, or one without any version keys, yields an empty list.
func SegmentReleases(series schema.Series) []schema.VersionRelease {
	chronological := discoverReleases(series)
	releases := sortBySemVer(chronological)
	resolveBoundaries(series, releases)
	return releases
}

// discoverReleases scans the series in chronological order and records a
// release stub at the first snapshot whose version counts mention each
// version. Discovery order fixes the release's position in the timeline,
// not its final ordering.
func discoverReleases(series schema.Series) []schema.VersionRelease {
	var releases []schema.VersionRelease
	known := make(map[string]struct{})

	for i, snap := range series {
		for version := range snap.VersionCounts {
			if _, ok := known[version]; ok {
				continue
			}
			known[version] = struct{}{}
			releases = append(releases, schema.VersionRelease{
				Version:          version,
				FirstSeenIndex:   i,
				ReleaseDownloads: snap.TotalCount,
			})
		}
	}
	return releases
}

// sortBySemVer returns a copy of the chronological release table ordered by
// semantic version, ascending. A patch for an older branch that appears late
// chronologically still sorts by its version number.
func sortBySemVer(chronological []schema.VersionRelease) []schema.VersionRelease {
	releases := make([]schema.VersionRelease, len(chronological))
	copy(releases, chronological)
	sort.SliceStable(releases, func(i, j int) bool {
		return CompareVersions(releases[i].Version, releases[j].Version) < 0
	})
	return releases
}

// resolveBoundaries fills in the end boundary and growth statistics for each
// release in the semantically sorted list.
func resolveBoundaries(series schema.Series, releases []schema.VersionRelease) {
	for i := range releases {
		r := &releases[i]

		// A release whose semantic successor appeared at the same snapshot
		// was superseded before ever becoming the sole active version.
		if i+1 < len(releases) && releases[i+1].FirstSeenIndex == r.FirstSeenIndex {
			r.EndDownloads = r.ReleaseDownloads
			r.DownloadChange = 0
			r.DurationDays = 0
			r.AvgDailyGrowth = 0
			continue
		}

		endIndex := nextBoundaryIndex(releases, r.FirstSeenIndex, len(series)) - 1
		if endIndex >= len(series) {
			// Boundary indexes come from the series itself, so this clamp
			// should be unreachable; tests assert as much.
			endIndex = len(series) - 1
		}

		r.EndDownloads = series[endIndex].TotalCount
		r.DownloadChange = r.EndDownloads - r.ReleaseDownloads
		r.DurationDays = durationDays(series[r.FirstSeenIndex].Timestamp, series[endIndex].Timestamp)
		r.AvgDailyGrowth = int(math.Round(float64(r.DownloadChange) / float64(r.DurationDays)))
	}
}

// nextBoundaryIndex finds the smallest first-seen index strictly greater
// than the given one across all releases, regardless of semantic position.
// It defaults to the series length when no later release exists, leaving the
// last release's window open-ended.
func nextBoundaryIndex(releases []schema.VersionRelease, firstSeen, seriesLen int) int {
	next := seriesLen
	for _, other := range releases {
		if other.FirstSeenIndex > firstSeen && other.FirstSeenIndex < next {
			next = other.FirstSeenIndex
		}
	}
	return next
}

// durationDays measures a release window in whole days, rounded, with a
// floor of one day so same-day release pairs never divide by zero.
func durationDays(start, end time.Time) int {
	days := int(math.Round(end.Sub(start).Hours() / 24))
	return max(1, days)
}
