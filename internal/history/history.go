// Package history reads and writes the raw series files that connect the
// extraction and analysis stages. A history file maps millisecond timestamps
// (as string keys) to stats records for a single plugin.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/schema"
)

// Record is one parsed stats entry for a plugin. Top-level keys other than
// the reserved ones are version identifiers with per-version counts.
type Record struct {
	Downloads     int
	DailyGrowth   *int // nil when the source had no explicit value
	VersionCounts map[string]int
}

// UnmarshalJSON decodes a record from its flat JSON object form. Non-numeric
// values under version keys are skipped rather than failing the record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	downloadsRaw, ok := raw[schema.DownloadsKey]
	if !ok {
		return fmt.Errorf("record has no %q key", schema.DownloadsKey)
	}
	if err := json.Unmarshal(downloadsRaw, &r.Downloads); err != nil {
		return fmt.Errorf("invalid %q value: %w", schema.DownloadsKey, err)
	}
	if r.Downloads < 0 {
		return fmt.Errorf("negative %q value %d", schema.DownloadsKey, r.Downloads)
	}

	if growthRaw, ok := raw[schema.DailyGrowthKey]; ok {
		var growth int
		if err := json.Unmarshal(growthRaw, &growth); err != nil {
			return fmt.Errorf("invalid %q value: %w", schema.DailyGrowthKey, err)
		}
		r.DailyGrowth = &growth
	}

	r.VersionCounts = make(map[string]int)
	for key, value := range raw {
		if _, reserved := schema.ReservedRecordKeys[key]; reserved {
			continue
		}
		var count int
		if err := json.Unmarshal(value, &count); err != nil {
			continue
		}
		r.VersionCounts[key] = count
	}
	return nil
}

// MarshalJSON encodes the record back to its flat JSON object form.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]int, len(r.VersionCounts)+2)
	flat[schema.DownloadsKey] = r.Downloads
	if r.DailyGrowth != nil {
		flat[schema.DailyGrowthKey] = *r.DailyGrowth
	}
	for version, count := range r.VersionCounts {
		flat[version] = count
	}
	return json.Marshal(flat)
}

// ParseStatsFile parses one revision of the tracked stats file and returns
// the record for the named plugin. The second return value is false when the
// plugin is absent or its record cannot be parsed; per the data-quality
// policy such revisions are skipped, never fatal.
func ParseStatsFile(data []byte, plugin string) (Record, bool) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Record{}, false
	}
	recordRaw, ok := top[plugin]
	if !ok {
		return Record{}, false
	}
	var record Record
	if err := json.Unmarshal(recordRaw, &record); err != nil {
		return Record{}, false
	}
	return record, true
}

// WriteFile writes the raw series to a history file. The file is regenerated
// wholesale on every extraction run.
func WriteFile(path string, series schema.Series) error {
	out := make(map[string]Record, len(series))
	for _, snap := range series {
		record := Record{
			Downloads:     snap.TotalCount,
			VersionCounts: snap.VersionCounts,
		}
		if snap.GrowthKnown {
			growth := snap.DailyGrowth
			record.DailyGrowth = &growth
		}
		out[strconv.FormatInt(snap.Timestamp.UnixMilli(), 10)] = record
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a history file back into a raw series. JSON object keys
// carry no order, so the result is sorted by timestamp before returning;
// the normalizer sorts again by contract but this keeps the raw series
// deterministic for callers that inspect it directly.
func ReadFile(path string) (schema.Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run 'plugtrend extract' first)", contract.ErrMissingHistoryFile, path)
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	var raw map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse history file %s: %w", path, err)
	}

	series := make(schema.Series, 0, len(raw))
	for key, record := range raw {
		millis, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp key %q in %s: %w", key, path, err)
		}
		snap := schema.Snapshot{
			Timestamp:     time.UnixMilli(millis).UTC(),
			TotalCount:    record.Downloads,
			VersionCounts: record.VersionCounts,
		}
		if record.DailyGrowth != nil {
			snap.DailyGrowth = *record.DailyGrowth
			snap.GrowthKnown = true
		}
		series = append(series, snap)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
	return series, nil
}
