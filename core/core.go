// Package core has the pipeline logic for extraction, segmentation and statistics.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/internal/history"
	"github.com/huangsam/plugtrend/internal/outwriter"
	"github.com/huangsam/plugtrend/internal/report"
	"github.com/huangsam/plugtrend/schema"
)

// ExecuteExtract walks the stats file's revision history, builds the
// anomaly-filtered raw series and writes the plugin's history file.
// It serves as the main entry point for the 'extract' command.
func ExecuteExtract(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := contract.NewLocalGitClient()

	series, err := ExtractSeries(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}

	path := cfg.HistoryFilePath()
	if err := history.WriteFile(path, series); err != nil {
		return err
	}

	fmt.Printf("Extracted %d snapshots for %s to %s in %v.\n", len(series), cfg.Plugin, path, time.Since(start))
	return nil
}

// ExtractSeries runs the extraction stage against an injected Git client and
// returns the accepted raw series without writing it anywhere.
func ExtractSeries(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) (schema.Series, error) {
	records, err := CollectRevisionRecords(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}
	series, err := BuildSeries(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %q never appears in %s", err, cfg.Plugin, cfg.StatsFile)
	}
	return series, nil
}

// GetReleaseResults loads the plugin's history file, normalizes the series
// and segments it into per-release statistics. The normalized series is
// returned alongside for callers that need the timeline itself.
func GetReleaseResults(cfg *contract.Config) (*schema.ReleaseResult, schema.Series, error) {
	raw, err := history.ReadFile(cfg.HistoryFilePath())
	if err != nil {
		return nil, nil, err
	}
	series := NormalizeSeries(raw)
	result := &schema.ReleaseResult{
		Plugin:   cfg.Plugin,
		Releases: SegmentReleases(series),
	}
	return result, series, nil
}

// ExecuteReleases runs the analysis stage and prints per-release statistics.
// It serves as the main entry point for the 'releases' command.
func ExecuteReleases(cfg *contract.Config) error {
	start := time.Now()
	result, series, err := GetReleaseResults(cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if len(series) == 0 {
		fmt.Printf("No accepted snapshots for %s; nothing to analyze.\n", cfg.Plugin)
		return nil
	}
	return outwriter.PrintReleaseResults(result, series, cfg, duration)
}

// GetReportData loads and analyzes the plugin's history and assembles the
// report input contract.
func GetReportData(cfg *contract.Config) (*schema.ReportData, error) {
	raw, err := history.ReadFile(cfg.HistoryFilePath())
	if err != nil {
		return nil, err
	}
	series := NormalizeSeries(raw)
	return BuildReportData(cfg.Plugin, series), nil
}

// ExecuteReport assembles the report data and renders the HTML report.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(cfg *contract.Config) error {
	start := time.Now()
	data, err := GetReportData(cfg)
	if err != nil {
		return err
	}

	path := cfg.ReportFilePath()
	if err := report.Render(data, path); err != nil {
		return err
	}

	if data.Empty() {
		fmt.Printf("No data for %s; wrote empty report to %s.\n", cfg.Plugin, path)
	} else {
		fmt.Printf("Wrote report for %s to %s in %v.\n", cfg.Plugin, path, time.Since(start))
	}
	return nil
}
