// Package repo resolves repository names against the configured roots.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/branchwell/gwt/internal/config"
)

// ErrRepositoryNotFound indicates the resolved path is not a git repository.
var ErrRepositoryNotFound = errors.New("repository not found")

// Repo is a resolved repository.
type Repo struct {
	// Name is the repository's directory name under the repos root.
	Name string
	// MainPath is the main (non-worktree) checkout, <repos_root>/<name>.
	MainPath string
	// WorktreeDir is where this repo's worktrees are stored,
	// <worktree_dir>/<name>. It may not exist yet.
	WorktreeDir string
}

// WorktreePath returns the conventional path for a branch's worktree.
func (r Repo) WorktreePath(branch string) string {
	return filepath.Join(r.WorktreeDir, branch)
}

// Resolve maps a repository name (or the configured default when name is
// empty) to its main path and worktree storage path. It fails with
// ErrRepositoryNotFound when the main path has no .git marker. Resolve never
// mutates anything; the worktree storage directory is created lazily on
// first worktree creation.
func Resolve(cfg config.Config, name string) (Repo, error) {
	if name == "" {
		name = cfg.DefaultRepo
	}

	r := Repo{
		Name:        name,
		MainPath:    filepath.Join(cfg.ReposRoot, name),
		WorktreeDir: filepath.Join(cfg.WorktreeDir, name),
	}

	if !isGitRepo(r.MainPath) {
		return Repo{}, fmt.Errorf("%w: %s is not a git repository (looked under %s)",
			ErrRepositoryNotFound, r.MainPath, cfg.ReposRoot)
	}
	return r, nil
}

// isGitRepo checks if a path is a git repository (has .git dir or file).
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree).
	return info.IsDir() || info.Mode().IsRegular()
}
