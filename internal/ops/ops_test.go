package ops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/branchwell/gwt/internal/git"
	"github.com/branchwell/gwt/internal/log"
	"github.com/branchwell/gwt/internal/repo"
)

// fakeGit is a scripted Git implementation backed by in-memory state.
type fakeGit struct {
	entries  []git.Entry
	local    map[string]bool
	remote   map[string]bool
	calls    []string
	failAdd  bool
	failRm   map[string]bool
	listErr  error
	fetchErr error
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		local:  map[string]bool{},
		remote: map[string]bool{},
		failRm: map[string]bool{},
	}
}

func (f *fakeGit) ListWorktrees(ctx context.Context, repoPath string) ([]git.Entry, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]git.Entry(nil), f.entries...), nil
}

func (f *fakeGit) LocalBranchExists(ctx context.Context, repoPath, branch string) bool {
	f.calls = append(f.calls, "local "+branch)
	return f.local[branch]
}

func (f *fakeGit) RemoteBranchExists(ctx context.Context, repoPath, branch string) bool {
	f.calls = append(f.calls, "remote "+branch)
	return f.remote[branch]
}

func (f *fakeGit) AddWorktree(ctx context.Context, repoPath, path, branch, baseRef string, newBranch bool) error {
	f.calls = append(f.calls, fmt.Sprintf("add %s %s base=%s new=%v", path, branch, baseRef, newBranch))
	if f.failAdd {
		return errors.New("failed to create worktree: scripted")
	}
	f.entries = append(f.entries, git.Entry{Path: path, Branch: branch})
	f.local[branch] = true
	return nil
}

func (f *fakeGit) RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	f.calls = append(f.calls, fmt.Sprintf("rm %s force=%v", path, force))
	if f.failRm[path] {
		return errors.New("scripted removal failure")
	}
	f.dropEntry(path)
	return nil
}

func (f *fakeGit) dropEntry(path string) {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.Path != path {
			kept = append(kept, e)
		}
	}
	f.entries = kept
}

func (f *fakeGit) Prune(ctx context.Context, repoPath string) error {
	f.calls = append(f.calls, "prune")
	return nil
}

func (f *fakeGit) Fetch(ctx context.Context, repoPath string) error {
	f.calls = append(f.calls, "fetch")
	return f.fetchErr
}

// fakeConfirm answers prompts with a fixed reply and records them.
type fakeConfirm struct {
	answer  bool
	err     error
	prompts []string
}

func (f *fakeConfirm) Confirm(prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

func testRepo(base string) repo.Repo {
	return repo.Repo{
		Name:        "demo",
		MainPath:    filepath.Join(base, "code", "demo"),
		WorktreeDir: filepath.Join(base, "code", "worktrees", "demo"),
	}
}

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, false, false), &buf
}
