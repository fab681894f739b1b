// Package ops implements the switch-or-create and cleanup flows.
//
// Flows depend on the Git and Confirmer interfaces rather than on
// subprocesses and terminals, so the decision logic is tested with scripted
// doubles. Everything here is best-effort and non-transactional: git owns
// the state, and a ref changing between scan and removal is not re-checked.
package ops

import (
	"context"
	"errors"

	"github.com/branchwell/gwt/internal/git"
)

// Git is the subset of git operations the flows need. *git.Client
// implements it.
type Git interface {
	ListWorktrees(ctx context.Context, repoPath string) ([]git.Entry, error)
	LocalBranchExists(ctx context.Context, repoPath, branch string) bool
	RemoteBranchExists(ctx context.Context, repoPath, branch string) bool
	AddWorktree(ctx context.Context, repoPath, path, branch, baseRef string, newBranch bool) error
	RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error
	Prune(ctx context.Context, repoPath string) error
	Fetch(ctx context.Context, repoPath string) error
}

// Confirmer asks the user a yes/no question. Implementations may be a
// terminal prompt or a scripted test double.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ErrCancelled is returned when the user declines a confirmation prompt.
// It is a normal negative outcome: nothing was mutated.
var ErrCancelled = errors.New("cancelled")
