package outwriter

import (
	"os"

	"github.com/huangsam/plugtrend/internal/contract"
	"golang.org/x/term"
)

// GetMaxVersionWidth calculates the maximum width for the version column in
// table output based on terminal width and the fixed numeric columns.
func GetMaxVersionWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the date, numeric and trend columns plus borders.
	const baseWidth = 65

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
