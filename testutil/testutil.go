package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// InitGitRepo initializes a non-bare git repository in dir whose HEAD points at branch.
// The branch is unborn until the first commit.
func InitGitRepo(t *testing.T, dir, branch string) *gogit.Repository {
	t.Helper()

	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		},
	})
	require.NoError(t, err, "failed to init git repo in %s", dir)
	return repo
}

// CreateCommit writes filename with content and commits it.
func CreateCommit(t *testing.T, repo *gogit.Repository, dir, filename, content string) plumbing.Hash {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filename)
	require.NoError(t, err)

	hash, err := wt.Commit("add "+filename, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return hash
}

// DetachHead points HEAD directly at hash.
func DetachHead(t *testing.T, repo *gogit.Repository, hash plumbing.Hash) {
	t.Helper()
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)))
}

// TouchGitFile creates a marker file (and its parent directories) inside the .git directory.
func TouchGitFile(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, ".git", filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}
