// Package contract provides interfaces and shared utilities for the plugtrend CLI's internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/plugtrend/schema"
)

// Fatal error taxonomy for the pipeline. An empty accepted series is
// deliberately not an error; it flows to the output layers as a degenerate
// result.
var (
	// ErrPluginNotFound means the target plugin never appeared in any
	// revision of the stats file, or is absent from the raw series.
	ErrPluginNotFound = errors.New("plugin not found in history")

	// ErrMissingHistoryFile means the expected history file does not exist.
	// Run 'plugtrend extract' first to generate it.
	ErrMissingHistoryFile = errors.New("history file not found")
)

// Revision identifies one commit that touched the tracked stats file.
type Revision struct {
	Hash      string    // Full commit hash
	Timestamp time.Time // Commit time
}

// GitClient defines the Git operations needed to walk the history of the
// tracked stats file. This allows the extraction logic to be tested without
// a real git executable.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git
	// repository containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// ListFileRevisions returns every revision that modified the given
	// file, oldest first.
	ListFileRevisions(ctx context.Context, repoPath string, path string) ([]Revision, error)

	// FileAtRevision returns the content of the file as of the given
	// commit hash.
	FileAtRevision(ctx context.Context, repoPath string, hash string, path string) ([]byte, error)
}

// CacheManager defines the interface for managing the revision-record cache.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetRevisionStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
