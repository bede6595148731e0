package cmd

import (
	"github.com/huangsam/plugtrend/core"
	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/spf13/cobra"
)

// releasesCmd derives per-release statistics from the extracted history.
var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Show per-release download statistics.",
	Long: `Segment the extracted download series into version releases and print
growth statistics for each one.

Versions are ordered semantically, so a late-discovered backport lands in the
right place on the timeline. A release superseded at the very snapshot it
appeared gets zeroed statistics rather than misleading ones.

Examples:
  # Print the release table
  plugtrend releases --plugin "My Plugin"

  # Export to CSV for tracking
  plugtrend releases --plugin "My Plugin" --output csv --output-file releases.csv

  # Export parquet files for analytical tooling
  plugtrend releases --plugin "My Plugin" --output parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReleases(cfg); err != nil {
			contract.LogFatal("Cannot analyze releases", err)
		}
	},
}
