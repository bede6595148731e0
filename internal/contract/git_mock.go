package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []interface{}{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// GetRepoHash implements the GitClient interface.
func (m *MockGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	hash, _ := ret.Get(0).(string)
	return hash, ret.Error(1)
}

// ListFileRevisions implements the GitClient interface.
func (m *MockGitClient) ListFileRevisions(ctx context.Context, repoPath string, path string) ([]Revision, error) {
	ret := m.Called(ctx, repoPath, path)
	revisions, _ := ret.Get(0).([]Revision)
	return revisions, ret.Error(1)
}

// FileAtRevision implements the GitClient interface.
func (m *MockGitClient) FileAtRevision(ctx context.Context, repoPath string, hash string, path string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, hash, path)
	content, _ := ret.Get(0).([]byte)
	return content, ret.Error(1)
}
