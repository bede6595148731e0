package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/schema"
)

// writeJSONReleaseResults marshals the release results to JSON and writes them.
func writeJSONReleaseResults(w io.Writer, result *schema.ReleaseResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeCSVReleaseResults writes the release results to a CSV writer.
func writeCSVReleaseResults(w *csv.Writer, result *schema.ReleaseResult) error {
	header := []string{
		"version",
		"first_seen_index",
		"release_downloads",
		"end_downloads",
		"download_change",
		"duration_days",
		"avg_daily_growth",
		"trend",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range result.Releases {
		row := []string{
			r.Version,
			strconv.Itoa(r.FirstSeenIndex),
			strconv.Itoa(r.ReleaseDownloads),
			strconv.Itoa(r.EndDownloads),
			strconv.Itoa(r.DownloadChange),
			strconv.Itoa(r.DurationDays),
			strconv.Itoa(r.AvgDailyGrowth),
			contract.GetPlainTrend(r.AvgDailyGrowth, r.DurationDays == 0),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
