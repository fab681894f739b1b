package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/branchwell/gwt/internal/notify"
	"github.com/branchwell/gwt/internal/output"
	"github.com/branchwell/gwt/internal/repo"
	"github.com/branchwell/gwt/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		Long: `Print the resolved paths for the selected repository, whether they exist,
and which post-create notification source is active.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigReport(cmd.Context())
		},
	}
}

// runConfigReport is read-only. It renders existence as ✓/✗ instead of
// failing early, but still exits non-zero when the main repository is
// missing so scripts notice.
func runConfigReport(ctx context.Context) error {
	out := output.FromContext(ctx)

	name := repoFlag
	if name == "" {
		name = cfg.DefaultRepo
	}
	r, resolveErr := repo.Resolve(cfg, name)
	if resolveErr != nil {
		// Report the paths it would have used.
		r = repo.Repo{
			Name:        name,
			MainPath:    filepath.Join(cfg.ReposRoot, name),
			WorktreeDir: filepath.Join(cfg.WorktreeDir, name),
		}
	}

	mainOK := resolveErr == nil
	storageOK := dirExists(r.WorktreeDir)

	n := &notify.Notifier{Cfg: cfg}

	out.Printf("Repository:       %s\n", r.Name)
	out.Printf("Repos root:       %s\n", cfg.ReposRoot)
	out.Printf("Worktree dir:     %s\n", cfg.WorktreeDir)
	out.Printf("Main repo:        %s %s\n", r.MainPath, styles.Check(mainOK))
	out.Printf("Worktree storage: %s %s\n", r.WorktreeDir, styles.Check(storageOK))
	out.Printf("Base branch:      %s\n", cfg.BaseBranch)
	out.Printf("Notifier source:  %s\n", n.Select(r.Name))

	if repos := messageRepos(); len(repos) > 0 {
		out.Printf("Per-repo messages: %s\n", strings.Join(repos, ", "))
	}

	return resolveErr
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// messageRepos returns the repo names with a configured per-repo message.
func messageRepos() []string {
	var repos []string
	for name, msg := range cfg.Messages {
		if msg != "" {
			repos = append(repos, name)
		}
	}
	sort.Strings(repos)
	return repos
}
