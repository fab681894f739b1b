package git

import (
	"context"
	"fmt"
	"strings"
)

// Client exposes the git operations gwt needs, scoped to repository paths.
type Client struct {
	run Runner
}

// NewClient creates a Client on the given Runner.
func NewClient(r Runner) *Client {
	return &Client{run: r}
}

// Entry is one worktree from `git worktree list --porcelain`. The main
// repository appears as its own entry.
type Entry struct {
	// Path is the worktree's filesystem path.
	Path string
	// Branch is the checked-out branch, empty when Detached.
	Branch string
	// Detached marks a detached-HEAD or branchless entry.
	Detached bool
}

// ListWorktrees returns all worktrees registered for the repository at
// repoPath, in git's order. The first entry is the main checkout.
func (c *Client) ListWorktrees(ctx context.Context, repoPath string) ([]Entry, error) {
	out, err := c.run.Output(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return parseWorktreeList(string(out)), nil
}

// parseWorktreeList parses `git worktree list --porcelain` output.
// Entries are separated by blank lines; each starts with "worktree <path>"
// followed by attribute lines ("HEAD <hash>", "branch refs/heads/<name>",
// "detached", "bare").
func parseWorktreeList(out string) []Entry {
	var entries []Entry
	var current Entry

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.Path != "" {
				entries = append(entries, current)
			}
			current = Entry{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Detached = true
		}
	}
	if current.Path != "" {
		entries = append(entries, current)
	}
	return entries
}

// LocalBranchExists reports whether refs/heads/<branch> exists.
func (c *Client) LocalBranchExists(ctx context.Context, repoPath, branch string) bool {
	// rev-parse exits 128 when the ref is absent.
	return c.run.Run(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// RemoteBranchExists reports whether the remote-tracking ref
// refs/remotes/origin/<branch> exists.
func (c *Client) RemoteBranchExists(ctx context.Context, repoPath, branch string) bool {
	return c.run.Run(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/remotes/origin/"+branch) == nil
}

// AddWorktree creates a worktree at path. With newBranch set, a branch of
// the given name is created starting at baseRef; otherwise the existing
// branch (local or remote-tracking) is checked out.
func (c *Client) AddWorktree(ctx context.Context, repoPath, path, branch, baseRef string, newBranch bool) error {
	args := []string{"worktree", "add", path}
	if newBranch {
		args = append(args, "-b", branch, baseRef)
	} else {
		args = append(args, branch)
	}
	if err := c.run.Run(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("failed to create worktree: %w", err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path.
func (c *Client) RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	return c.run.Run(ctx, repoPath, args...)
}

// Prune removes stale worktree administrative records.
func (c *Client) Prune(ctx context.Context, repoPath string) error {
	return c.run.Run(ctx, repoPath, "worktree", "prune")
}

// Fetch updates remote-tracking refs from origin, pruning deleted ones.
func (c *Client) Fetch(ctx context.Context, repoPath string) error {
	return c.run.Run(ctx, repoPath, "fetch", "--prune", "origin")
}
