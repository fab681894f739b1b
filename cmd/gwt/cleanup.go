package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/branchwell/gwt/internal/log"
	"github.com/branchwell/gwt/internal/ops"
	"github.com/branchwell/gwt/internal/repo"
	"github.com/branchwell/gwt/internal/ui"
	"github.com/branchwell/gwt/internal/ui/prompt"
	"github.com/branchwell/gwt/internal/ui/styles"
)

func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove worktrees whose branch is gone locally and on origin",
		Args:  cobra.NoArgs,
		Long: `Find and remove orphaned worktrees.

A worktree is orphaned when its checked-out branch exists neither locally
nor on origin (typically after the branch was merged and deleted). Stale
worktree records are pruned and remote refs fetched first; all orphans are
then removed after a single confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup(cmd.Context())
		},
	}
}

func runCleanup(ctx context.Context) error {
	l := log.FromContext(ctx)

	r, err := repo.Resolve(cfg, repoFlag)
	if err != nil {
		return err
	}

	cleaner := &ops.Cleaner{Git: gitClient(), Log: l}

	sp := ui.NewSpinner(fmt.Sprintf("Fetching origin and scanning worktrees for %s...", r.Name))
	sp.Start()
	orphans, err := cleaner.Scan(ctx, r)
	sp.Stop()
	if err != nil {
		return err
	}

	if len(orphans) == 0 {
		l.Println("No orphaned worktrees found")
		return nil
	}

	l.Printf("Found %d orphaned worktree(s):\n", len(orphans))
	for _, o := range orphans {
		l.Printf("  %s  %s\n", styles.AccentStyle.Render(o.Branch), styles.MutedStyle.Render(o.Path))
	}

	ok, err := prompt.Terminal{}.Confirm(fmt.Sprintf("Remove all %d orphaned worktree(s)?", len(orphans)))
	if err != nil {
		return err
	}
	if !ok {
		l.Println("Cancelled")
		return ops.ErrCancelled
	}

	removed := cleaner.Remove(ctx, r, orphans)
	l.Printf("Removed %d of %d worktree(s)\n", removed, len(orphans))
	return nil
}
