// Package git is the single gateway to the git CLI.
//
// Every stateful operation (listing, ref checks, worktree add/remove/prune,
// fetch) goes through a [Runner], so flows built on [Client] can be tested
// against a scripted fake without spawning subprocesses. Git owns all state;
// this package only invokes and parses.
package git
