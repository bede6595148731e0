package cmd

import (
	"github.com/huangsam/plugtrend/core"
	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders the interactive HTML report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render an interactive HTML download report.",
	Long: `Assemble the full report payload from the extracted history and render
it as a standalone HTML page.

The report shows the cumulative counter colored by active version, daily
growth bars and trailing 7/30 snapshot rolling averages. An empty history
still produces a valid page with a "no data" placeholder.

Examples:
  # Render the report next to the history file
  plugtrend report --plugin "My Plugin"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(cfg); err != nil {
			contract.LogFatal("Cannot render report", err)
		}
	},
}
