package ops

import (
	"context"
	"fmt"
	"os"

	"github.com/branchwell/gwt/internal/repo"
)

// Strategy describes how a worktree target is satisfied.
type Strategy int

const (
	// UseExisting switches into a worktree that already exists on disk.
	UseExisting Strategy = iota
	// CheckoutBranch creates a worktree for a branch that already exists
	// locally or on the remote.
	CheckoutBranch
	// CreateBranch creates a worktree together with a new branch based on
	// the configured base branch.
	CreateBranch
)

// SwitchResult is the outcome of a successful SwitchOrCreate.
type SwitchResult struct {
	// Path is the worktree directory to change into.
	Path string
	// Created is true when a new worktree was added.
	Created bool
	// Strategy is how the target was satisfied.
	Strategy Strategy
}

// Switcher runs the switch-or-create flow.
type Switcher struct {
	Git     Git
	Confirm Confirmer
	// BaseBranch is the starting point for newly created branches.
	BaseBranch string
}

// SwitchOrCreate resolves a branch to a worktree directory, creating the
// worktree after confirmation when it does not exist yet. Branch existence
// never blocks creation; it only picks between checking out the branch and
// creating a new one from BaseBranch. Declining the prompt returns
// ErrCancelled with nothing mutated.
func (s *Switcher) SwitchOrCreate(ctx context.Context, r repo.Repo, branch string) (SwitchResult, error) {
	path := r.WorktreePath(branch)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return SwitchResult{Path: path, Strategy: UseExisting}, nil
	}

	strategy := CreateBranch
	var prompt string
	switch {
	case s.Git.LocalBranchExists(ctx, r.MainPath, branch):
		strategy = CheckoutBranch
		prompt = fmt.Sprintf("Branch %q exists locally. Create worktree at %s?", branch, path)
	case s.Git.RemoteBranchExists(ctx, r.MainPath, branch):
		strategy = CheckoutBranch
		prompt = fmt.Sprintf("Branch %q exists on origin. Create worktree at %s?", branch, path)
	default:
		prompt = fmt.Sprintf("Branch %q does not exist, will create new branch from %s. Continue?", branch, s.BaseBranch)
	}

	ok, err := s.Confirm.Confirm(prompt)
	if err != nil {
		return SwitchResult{}, err
	}
	if !ok {
		return SwitchResult{}, ErrCancelled
	}

	if err := os.MkdirAll(r.WorktreeDir, 0o755); err != nil {
		return SwitchResult{}, fmt.Errorf("failed to create worktree storage %s: %w", r.WorktreeDir, err)
	}

	newBranch := strategy == CreateBranch
	if err := s.Git.AddWorktree(ctx, r.MainPath, path, branch, s.BaseBranch, newBranch); err != nil {
		return SwitchResult{}, err
	}

	return SwitchResult{Path: path, Created: true, Strategy: strategy}, nil
}
