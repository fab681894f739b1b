// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// gwt shells out to the git CLI rather than using a Go git library. Worktree
// bookkeeping, ref resolution, and fetch semantics then always match the
// user's installed git and configuration (SSH keys, credential helpers,
// includeIf config), and git remains the single source of truth for all
// state this tool touches.
package cmd
