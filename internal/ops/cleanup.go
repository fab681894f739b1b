package ops

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/branchwell/gwt/internal/log"
	"github.com/branchwell/gwt/internal/repo"
)

// Orphan is a worktree whose branch exists neither locally nor on origin.
type Orphan struct {
	Path   string
	Branch string
}

// Cleaner scans for and removes orphaned worktrees.
type Cleaner struct {
	Git Git
	Log *log.Logger

	// Test seams; Run falls back to the os functions when nil.
	Getwd     func() (string, error)
	Chdir     func(string) error
	RemoveAll func(string) error
}

// Scan prunes stale worktree records, refreshes remote-tracking refs, and
// classifies orphans. The fetch is best-effort: on failure a warning is
// logged and classification proceeds with possibly-stale remote data.
// Detached and branchless entries and the main checkout itself are never
// orphans.
func (c *Cleaner) Scan(ctx context.Context, r repo.Repo) ([]Orphan, error) {
	if err := c.Git.Prune(ctx, r.MainPath); err != nil {
		c.Log.Warnf("prune failed: %v", err)
	}
	if err := c.Git.Fetch(ctx, r.MainPath); err != nil {
		c.Log.Warnf("fetch failed, remote refs may be stale: %v", err)
	}

	entries, err := c.Git.ListWorktrees(ctx, r.MainPath)
	if err != nil {
		return nil, err
	}

	var orphans []Orphan
	for _, e := range entries {
		if e.Path == r.MainPath || e.Detached || e.Branch == "" {
			continue
		}
		if c.Git.LocalBranchExists(ctx, r.MainPath, e.Branch) {
			continue
		}
		if c.Git.RemoteBranchExists(ctx, r.MainPath, e.Branch) {
			continue
		}
		orphans = append(orphans, Orphan{Path: e.Path, Branch: e.Branch})
	}
	return orphans, nil
}

// Remove deletes the given orphans in order, returning how many were
// removed. Each orphan is handled independently: a failed forced removal
// falls back to deleting the directory and pruning, and one failure does not
// stop the rest. When the working directory is inside a doomed worktree the
// process first moves to the main repository so it is not left standing in a
// deleted directory.
func (c *Cleaner) Remove(ctx context.Context, r repo.Repo, orphans []Orphan) int {
	getwd := c.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	chdir := c.Chdir
	if chdir == nil {
		chdir = os.Chdir
	}
	removeAll := c.RemoveAll
	if removeAll == nil {
		removeAll = os.RemoveAll
	}

	removed := 0
	for _, o := range orphans {
		if cwd, err := getwd(); err == nil && isWithin(o.Path, cwd) {
			if err := chdir(r.MainPath); err != nil {
				c.Log.Warnf("cannot leave %s: %v", o.Path, err)
			}
		}

		if err := c.Git.RemoveWorktree(ctx, r.MainPath, o.Path, true); err != nil {
			c.Log.Warnf("git removal of %s failed (%v), deleting directly", o.Path, err)
			if err := removeAll(o.Path); err != nil {
				c.Log.Warnf("failed to remove %s: %v", o.Path, err)
				continue
			}
			if err := c.Git.Prune(ctx, r.MainPath); err != nil {
				c.Log.Warnf("prune after removal failed: %v", err)
			}
		}

		c.Log.Printf("Removed %s (%s)\n", o.Path, o.Branch)
		removed++
	}
	return removed
}

// isWithin reports whether path is dir or inside dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
