package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/branchwell/gwt/internal/output"
	"github.com/branchwell/gwt/internal/repo"
	"github.com/branchwell/gwt/internal/ui/styles"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List worktrees for the resolved repository",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  gwt list             # worktrees of the default repo
  gwt -r api ls        # worktrees of the api repo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context())
		},
	}
}

// runList prints one line per worktree: branch and path, the main checkout
// first (as git reports it).
func runList(ctx context.Context) error {
	out := output.FromContext(ctx)

	r, err := repo.Resolve(cfg, repoFlag)
	if err != nil {
		return err
	}

	entries, err := gitClient().ListWorktrees(ctx, r.MainPath)
	if err != nil {
		return err
	}

	for _, e := range entries {
		branch := e.Branch
		if e.Detached || branch == "" {
			branch = "(detached)"
		}
		marker := ""
		if e.Path == r.MainPath {
			marker = styles.MutedStyle.Render(" (main)")
		}
		out.Printf("%s%s  %s\n",
			styles.AccentStyle.Render(branch),
			marker,
			styles.MutedStyle.Render(e.Path),
		)
	}
	return nil
}
