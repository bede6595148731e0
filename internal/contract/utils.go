package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Trend label constants for the releases table.
const (
	SurgingValue    = "Surging"    // Very high average daily growth
	GrowingValue    = "Growing"    // Healthy average daily growth
	SteadyValue     = "Steady"     // Low but non-zero growth
	DormantValue    = "Dormant"    // No measured growth
	SupersededValue = "Superseded" // Release replaced before becoming sole active version
)

// Color variables for console output.
var (
	SurgingColor    = color.New(color.FgRed, color.Bold)     // surgingColor flags unusually fast adoption.
	GrowingColor    = color.New(color.FgMagenta, color.Bold) // growingColor marks a healthy release.
	SteadyColor     = color.New(color.FgYellow)              // steadyColor marks slow but real growth.
	DormantColor    = color.New(color.FgCyan)                // dormantColor marks no measured adoption.
	SupersededColor = color.New(color.Faint)                 // supersededColor marks zero-window releases.
)

// GetPlainTrend returns a plain text label for a release based on its average
// daily growth. This is the core logic used for CSV, JSON and table printing.
func GetPlainTrend(avgDailyGrowth int, superseded bool) string {
	switch {
	case superseded:
		return SupersededValue
	case avgDailyGrowth >= 500:
		return SurgingValue
	case avgDailyGrowth >= 100:
		return GrowingValue
	case avgDailyGrowth >= 1:
		return SteadyValue
	default:
		return DormantValue
	}
}

// GetColorTrend returns a colored trend label for console output (table).
// It uses GetPlainTrend to determine the string, then applies the color.
func GetColorTrend(avgDailyGrowth int, superseded bool) string {
	text := GetPlainTrend(avgDailyGrowth, superseded)

	switch text {
	case SurgingValue:
		return SurgingColor.Sprint(text)
	case GrowingValue:
		return GrowingColor.Sprint(text)
	case SteadyValue:
		return SteadyColor.Sprint(text)
	case SupersededValue:
		return SupersededColor.Sprint(text)
	default: // "Dormant"
		return DormantColor.Sprint(text)
	}
}

// PluginSlug derives the machine-safe identifier for a plugin display name:
// lower-cased, with runs of whitespace collapsed to single hyphens. The slug
// keys derived file names (history input, report output) and cache entries.
func PluginSlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogError logs an error message to stderr without exiting.
func LogError(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the revision
// cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".plugtrend_cache.db"
	}
	return filepath.Join(homeDir, ".plugtrend_cache.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
