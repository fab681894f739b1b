package main

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/branchwell/gwt/internal/log"
	"github.com/branchwell/gwt/internal/notify"
	"github.com/branchwell/gwt/internal/ops"
	"github.com/branchwell/gwt/internal/output"
	"github.com/branchwell/gwt/internal/repo"
	"github.com/branchwell/gwt/internal/ui/prompt"
)

// copyPath is the root --copy flag: put the path on the clipboard instead of
// printing it for the shell wrapper.
var copyPath bool

// runSwitch handles `gwt <branch>`: change into the branch's worktree,
// creating it first when needed. On success the worktree path is the
// process's only stdout; the wrapper from `gwt init` cds into it.
func runSwitch(ctx context.Context, branch string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	r, err := repo.Resolve(cfg, repoFlag)
	if err != nil {
		return err
	}

	sw := &ops.Switcher{
		Git:        gitClient(),
		Confirm:    prompt.Terminal{},
		BaseBranch: cfg.BaseBranch,
	}

	res, err := sw.SwitchOrCreate(ctx, r, branch)
	if errors.Is(err, ops.ErrCancelled) {
		l.Println("Cancelled")
		return err
	}
	if err != nil {
		return err
	}

	if res.Created {
		l.Printf("Created worktree for %q at %s\n", branch, res.Path)

		n := &notify.Notifier{Cfg: cfg, Out: l.Writer()}
		if err := n.Notify(ctx, r.Name, branch, res.Path); err != nil {
			// The worktree exists and is usable; a broken hook is a warning.
			l.Warnf("%v", err)
		}
	}

	if copyPath {
		if err := clipboard.WriteAll(res.Path); err != nil {
			return err
		}
		l.Printf("Copied %s to clipboard\n", res.Path)
		return nil
	}

	out.Path(res.Path)
	return nil
}
