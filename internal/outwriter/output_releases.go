package outwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/internal/parquet"
	"github.com/huangsam/plugtrend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// printJSONReleaseResults handles opening the file and calling the JSON writer.
func printJSONReleaseResults(result *schema.ReleaseResult, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
		}
	}()

	if err := writeJSONReleaseResults(file, result); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote JSON release results to %s\n", cfg.OutputFile)
	}
	return nil
}

// printCSVReleaseResults handles opening the file and calling the CSV writer.
func printCSVReleaseResults(result *schema.ReleaseResult, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
		}
	}()

	w := csv.NewWriter(file)
	if err := writeCSVReleaseResults(w, result); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote CSV release results to %s\n", cfg.OutputFile)
	}
	return nil
}

// printParquetReleaseResults writes releases and snapshots as parquet files.
// Parquet is a file format, so stdout is never an option here; without an
// explicit output file the plugin slug names the release file in the data
// directory. The series file always lands next to the release file.
func printParquetReleaseResults(result *schema.ReleaseResult, series schema.Series, cfg *contract.Config) error {
	outputPath := cfg.OutputFile
	if outputPath == "" {
		outputPath = filepath.Join(cfg.DataDir, cfg.PluginSlug+"-releases.parquet")
	}
	if err := parquet.WriteReleasesParquet(parquet.ReleaseRows(result), outputPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote parquet release results to %s\n", outputPath)

	seriesPath := filepath.Join(filepath.Dir(outputPath), cfg.PluginSlug+"-series.parquet")
	if err := parquet.WriteSnapshotsParquet(parquet.SnapshotRows(cfg.Plugin, series), seriesPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote parquet series to %s\n", seriesPath)
	return nil
}

// printReleaseTable prints the per-release statistics as a table.
func printReleaseTable(result *schema.ReleaseResult, series schema.Series, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Version", "First Seen", "At Release", "At End", "Change", "Days", "Avg/Day", "Trend"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxVersionWidth := GetMaxVersionWidth(cfg)

	var data [][]string
	limit := min(cfg.ResultLimit, len(result.Releases))
	for _, r := range result.Releases[:limit] {
		superseded := r.DurationDays == 0
		trend := contract.GetPlainTrend(r.AvgDailyGrowth, superseded)
		if cfg.UseColors {
			trend = contract.GetColorTrend(r.AvgDailyGrowth, superseded)
		}
		row := []string{
			truncateVersion(r.Version, maxVersionWidth),
			series[r.FirstSeenIndex].Timestamp.UTC().Format("2006-01-02"),
			strconv.Itoa(r.ReleaseDownloads),
			strconv.Itoa(r.EndDownloads),
			strconv.Itoa(r.DownloadChange),
			strconv.Itoa(r.DurationDays),
			strconv.Itoa(r.AvgDailyGrowth),
			trend,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(result.Releases) > limit {
		fmt.Printf("Showing %d of %d releases (raise --limit for more).\n", limit, len(result.Releases))
	}
	fmt.Printf("Analyzed %d snapshots and %d releases for %s in %v.\n", len(series), len(result.Releases), result.Plugin, duration)
	return nil
}

// truncateVersion truncates a version label with an ellipsis suffix.
func truncateVersion(version string, maxWidth int) string {
	runes := []rune(version)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return version
}
