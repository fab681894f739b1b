// Package notify emits post-creation setup instructions for new worktrees.
//
// Selection is strictly priority-ordered, first match wins: the configured
// hook command, then a per-repo message, then the global default message.
package notify

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/branchwell/gwt/internal/config"
)

// Source identifies which notification source is active for a repository.
type Source string

const (
	SourceHook    Source = "hook"
	SourceRepo    Source = "per-repo message"
	SourceDefault Source = "default message"
	SourceNone    Source = "none"
)

// indent prefixes every printed message line.
const indent = "  "

// Notifier selects and emits post-creation notifications.
type Notifier struct {
	Cfg config.Config
	// Out receives message lines and hook output. The CLI passes stderr so
	// the shell wrapper's stdout stays a bare path.
	Out io.Writer
}

// Select returns the active source for a repository without emitting
// anything. An absent Messages key falls through to the default; a present
// but empty one does too, so clearing a per-repo message restores the
// default rather than silencing it.
func (n *Notifier) Select(repoName string) Source {
	if n.Cfg.Hook != "" {
		return SourceHook
	}
	if msg, ok := n.Cfg.Messages[repoName]; ok && msg != "" {
		return SourceRepo
	}
	if n.Cfg.PostCreateMessage != "" {
		return SourceDefault
	}
	return SourceNone
}

// Notify emits the post-creation notification for a freshly created
// worktree. Hook failures are returned; the hook fully owns its output.
func (n *Notifier) Notify(ctx context.Context, repoName, branch, path string) error {
	switch n.Select(repoName) {
	case SourceHook:
		return n.runHook(ctx, repoName, branch, path)
	case SourceRepo:
		n.printMessage(n.Cfg.Messages[repoName])
	case SourceDefault:
		n.printMessage(n.Cfg.PostCreateMessage)
	}
	return nil
}

// printMessage writes a message line by line with the indent prefix.
func (n *Notifier) printMessage(msg string) {
	for _, line := range strings.Split(strings.TrimRight(msg, "\n"), "\n") {
		fmt.Fprintf(n.Out, "%s%s\n", indent, line)
	}
}

// runHook executes the hook command via `sh -c` in the new worktree with the
// repo, branch, and path available both as environment variables and as
// {repo}/{branch}/{path} placeholders.
func (n *Notifier) runHook(ctx context.Context, repoName, branch, path string) error {
	command := n.Cfg.Hook
	command = strings.ReplaceAll(command, "{repo}", repoName)
	command = strings.ReplaceAll(command, "{branch}", branch)
	command = strings.ReplaceAll(command, "{path}", path)

	c := exec.CommandContext(ctx, "sh", "-c", command)
	c.Dir = path
	c.Env = append(c.Environ(),
		"GWT_REPO="+repoName,
		"GWT_BRANCH="+branch,
		"GWT_PATH="+path,
	)
	c.Stdout = n.Out
	c.Stderr = n.Out

	if err := c.Run(); err != nil {
		return fmt.Errorf("post-create hook failed: %w", err)
	}
	return nil
}
