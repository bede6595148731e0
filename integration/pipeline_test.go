//go:build basic

package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractReleasesReportPipeline builds a small git repository with a
// tracked stats file, then drives the full extract -> releases -> report
// pipeline through the CLI and checks the derived numbers.
func TestExtractReleasesReportPipeline(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repoDir := t.TempDir()
	dataDir := t.TempDir()
	initGitRepo(t, repoDir)

	// Four revisions: the third dips below the second and must be dropped.
	commitStats(t, repoDir, "2024-03-01T12:00:00Z", `{"My Plugin": {"downloads": 100, "1.0.0": 100}}`)
	commitStats(t, repoDir, "2024-03-02T12:00:00Z", `{"My Plugin": {"downloads": 250, "1.1.0": 150}}`)
	commitStats(t, repoDir, "2024-03-03T12:00:00Z", `{"My Plugin": {"downloads": 90, "1.1.0": 90}}`)
	commitStats(t, repoDir, "2024-03-04T12:00:00Z", `{"My Plugin": {"downloads": 400, "2.0.0": 150}}`)

	commonArgs := []string{
		"--plugin", "My Plugin",
		"--stats-file", "downloads.json",
		"--data-dir", dataDir,
		"--cache-backend", "none",
	}

	_, err := runPlugtrendCommand(t, repoDir, append([]string{"extract", repoDir}, commonArgs...)...)
	require.NoError(t, err)

	historyPath := filepath.Join(dataDir, "my-plugin-history.json")
	require.FileExists(t, historyPath)

	// The anomalous third revision never reaches the history file.
	var raw map[string]map[string]any
	historyData, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(historyData, &raw))
	assert.Len(t, raw, 3)

	output, err := runPlugtrendCommand(t, repoDir, append([]string{"releases", "--output", "json"}, commonArgs...)...)
	require.NoError(t, err)

	var result struct {
		Plugin   string `json:"plugin"`
		Releases []struct {
			Version        string `json:"version"`
			EndDownloads   int    `json:"endDownloads"`
			DownloadChange int    `json:"downloadChange"`
		} `json:"releases"`
	}
	require.NoError(t, json.Unmarshal(output, &result))
	assert.Equal(t, "My Plugin", result.Plugin)
	require.Len(t, result.Releases, 3)
	assert.Equal(t, "1.0.0", result.Releases[0].Version)
	assert.Equal(t, "2.0.0", result.Releases[2].Version)
	assert.Equal(t, 400, result.Releases[2].EndDownloads)

	_, err = runPlugtrendCommand(t, repoDir, append([]string{"report"}, commonArgs...)...)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dataDir, "my-plugin-report.html"))
}

func initGitRepo(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
}

func commitStats(t *testing.T, dir, date, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "downloads.json"), []byte(content), 0o644))
	runGit(t, dir, "add", "downloads.json")

	cmd := exec.Command("git", "commit", "-m", fmt.Sprintf("stats at %s", date))
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE="+date,
		"GIT_COMMITTER_DATE="+date,
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
}
