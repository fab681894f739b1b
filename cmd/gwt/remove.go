package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/branchwell/gwt/internal/log"
	"github.com/branchwell/gwt/internal/repo"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <branch>",
		Short:   "Remove the named worktree",
		Aliases: []string{"remove"},
		Args:    usageArgs(cobra.ExactArgs(1)),
		Long: `Remove the worktree for a branch.

The worktree must be clean; git refuses to remove one with uncommitted
changes. The branch itself is kept.`,
		Example: `  gwt rm feature-x
  gwt -r api remove hotfix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), args[0])
		},
	}
}

func runRemove(ctx context.Context, branch string) error {
	l := log.FromContext(ctx)

	r, err := repo.Resolve(cfg, repoFlag)
	if err != nil {
		return err
	}

	path := r.WorktreePath(branch)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		msg := fmt.Sprintf("no worktree for branch %q at %s", branch, path)
		if suggestions := similarBranches(ctx, r, branch); len(suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		return errors.New(msg)
	}

	if err := gitClient().RemoveWorktree(ctx, r.MainPath, path, false); err != nil {
		return fmt.Errorf("failed to remove worktree: %w", err)
	}

	l.Printf("Removed worktree %s\n", path)
	return nil
}

// similarBranches fuzzy-matches branch against the repo's current worktree
// branches for a "did you mean" hint. Listing failures just mean no hint.
func similarBranches(ctx context.Context, r repo.Repo, branch string) []string {
	entries, err := gitClient().ListWorktrees(ctx, r.MainPath)
	if err != nil {
		return nil
	}

	var branches []string
	for _, e := range entries {
		if e.Branch != "" && e.Path != r.MainPath {
			branches = append(branches, e.Branch)
		}
	}

	matches := fuzzy.Find(branch, branches)
	var suggestions []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, fmt.Sprintf("%q", m.Str))
	}
	return suggestions
}
