package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/branchwell/gwt/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Runner executes git with the given arguments in dir (repository path, or
// empty for the process working directory). It is the narrow seam between
// the tool's logic and the git subprocess; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
	Output(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// execRunner runs git as a subprocess via internal/cmd.
type execRunner struct{}

// NewRunner returns the Runner backed by the real git binary.
func NewRunner() Runner {
	return execRunner{}
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

func (execRunner) Run(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

func (execRunner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}
