package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/internal/history"
	"github.com/huangsam/plugtrend/schema"
)

// cacheVersion guards cached revision records against format changes.
const cacheVersion = 1

// RevisionRecord pairs a revision timestamp with the plugin's stats record
// parsed from that revision. Record is nil when the plugin was absent from
// the revision or its record could not be parsed.
type RevisionRecord struct {
	Timestamp time.Time
	Record    *history.Record
}

// revisionCacheEntry is the serialized form of a parsed revision stored in
// the revision cache. Absent records are cached too, so re-extraction skips
// 'git show' for revisions known to lack the plugin.
type revisionCacheEntry struct {
	Present bool           `json:"present"`
	Record  history.Record `json:"record,omitempty"`
}

// CollectRevisionRecords walks every revision of the tracked stats file,
// oldest first, and parses the target plugin's record from each. Parsed
// records are memoised in the revision cache keyed by commit hash and plugin
// slug; revisions whose content cannot be read are skipped with a warning.
func CollectRevisionRecords(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) ([]RevisionRecord, error) {
	revisions, err := client.ListFileRevisions(ctx, cfg.RepoPath, cfg.StatsFile)
	if err != nil {
		return nil, err
	}
	if len(revisions) == 0 {
		return nil, fmt.Errorf("no revisions found for %s in %s", cfg.StatsFile, cfg.RepoPath)
	}

	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetRevisionStore()
	}

	records := make([]RevisionRecord, 0, len(revisions))
	for _, rev := range revisions {
		record, ok := lookupCachedRecord(store, cfg.PluginSlug, rev.Hash)
		if !ok {
			content, err := client.FileAtRevision(ctx, cfg.RepoPath, rev.Hash, cfg.StatsFile)
			if err != nil {
				contract.LogWarn(fmt.Sprintf("skipping revision %.12s", rev.Hash), err)
				continue
			}
			record = parseAndCacheRecord(store, cfg.Plugin, cfg.PluginSlug, rev, content)
		}
		records = append(records, RevisionRecord{Timestamp: rev.Timestamp, Record: record})
	}
	return records, nil
}

// lookupCachedRecord fetches a parsed revision record from the cache.
// The second return value is false on any miss or decode failure.
func lookupCachedRecord(store contract.CacheStore, slug, hash string) (*history.Record, bool) {
	if store == nil {
		return nil, false
	}
	value, version, _, err := store.Get(revisionCacheKey(slug, hash))
	if err != nil || version != cacheVersion {
		return nil, false
	}
	var entry revisionCacheEntry
	if err := json.Unmarshal(value, &entry); err != nil {
		return nil, false
	}
	if !entry.Present {
		return nil, true
	}
	record := entry.Record
	return &record, true
}

// parseAndCacheRecord parses a revision's stats content and stores the
// outcome, present or not, in the revision cache.
func parseAndCacheRecord(store contract.CacheStore, plugin, slug string, rev contract.Revision, content []byte) *history.Record {
	record, present := history.ParseStatsFile(content, plugin)

	if store != nil {
		entry := revisionCacheEntry{Present: present}
		if present {
			entry.Record = record
		}
		if value, err := json.Marshal(entry); err == nil {
			if err := store.Set(revisionCacheKey(slug, rev.Hash), value, cacheVersion, rev.Timestamp.Unix()); err != nil {
				contract.LogWarn("failed to cache revision record", err)
			}
		}
	}

	if !present {
		return nil
	}
	return &record
}

func revisionCacheKey(slug, hash string) string {
	return slug + ":" + hash
}

// BuildSeries converts an ordered sequence of revision records into the raw
// accepted series. A snapshot is accepted only when its counter is greater
// than or equal to the last accepted counter; strictly smaller values are
// anomalies and are dropped entirely, leaving the accepted baseline
// untouched. Revisions without a record are skipped. The error is
// ErrPluginNotFound when the plugin never appears in any revision.
func BuildSeries(records []RevisionRecord) (schema.Series, error) {
	var series schema.Series
	seen := false

	for _, rev := range records {
		if rev.Record == nil {
			continue
		}
		seen = true

		if len(series) > 0 {
			last := series[len(series)-1]
			if rev.Record.Downloads < last.TotalCount {
				// Decreasing counter: data-quality anomaly, not an error.
				continue
			}
			if rev.Timestamp.Equal(last.Timestamp) {
				// Same-instant revision: the later commit wins.
				series = series[:len(series)-1]
			}
		}

		snap := schema.Snapshot{
			Timestamp:     rev.Timestamp,
			TotalCount:    rev.Record.Downloads,
			VersionCounts: rev.Record.VersionCounts,
		}
		if rev.Record.DailyGrowth != nil {
			snap.DailyGrowth = *rev.Record.DailyGrowth
			snap.GrowthKnown = true
		}
		series = append(series, snap)
	}

	if !seen {
		return nil, contract.ErrPluginNotFound
	}
	return series, nil
}
