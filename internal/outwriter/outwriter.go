// Package outwriter has output and writer logic for release statistics.
package outwriter

import (
	"fmt"
	"time"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/schema"
)

// PrintReleaseResults outputs the release statistics, dispatching on the
// configured output format. The series provides the timeline context (first
// seen dates) for the human-readable table.
func PrintReleaseResults(result *schema.ReleaseResult, series schema.Series, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONReleaseResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVReleaseResults(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetReleaseResults(result, series, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printReleaseTable(result, series, cfg, duration); err != nil {
			return fmt.Errorf("error writing release table output: %w", err)
		}
	}
	return nil
}
