package cmd

import (
	"github.com/huangsam/plugtrend/core"
	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/spf13/cobra"
)

// extractCmd walks the stats file's history and writes the raw series.
var extractCmd = &cobra.Command{
	Use:   "extract [repo-path]",
	Short: "Extract the plugin's download history from Git.",
	Long: `Walk every revision of the tracked stats file and rebuild the plugin's
download history as a clean, anomaly-filtered series.

Counter snapshots that decrease relative to the last accepted value are
treated as data glitches and dropped, never clamped. The accepted series is
written to <slug>-history.json in the data directory for the releases and
report commands to consume.

Examples:
  # Extract history for a plugin from the current repository
  plugtrend extract --plugin "My Plugin"

  # Extract from a different repository and stats file
  plugtrend extract ~/src/stats-repo --plugin "My Plugin" --stats-file data/downloads.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: gitSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExtract(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot extract history", err)
		}
	},
}
