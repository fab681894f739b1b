package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/branchwell/gwt/internal/config"
	"github.com/branchwell/gwt/internal/git"
	"github.com/branchwell/gwt/internal/log"
	"github.com/branchwell/gwt/internal/output"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	repoFlag string

	// Shared state injected into commands
	cfg config.Config
)

// rootCmd represents the base command. An argument that is not a known
// subcommand is treated as a branch name and dispatched to switch-or-create.
var rootCmd = &cobra.Command{
	Use:   "gwt [branch]",
	Short: "Switch between git worktrees, creating them on demand",
	Long: `gwt is a thin layer over git worktree for repositories under a common root.

Give it a branch name to switch into that branch's worktree, creating the
worktree (and, if needed, the branch) after confirmation. Worktrees live at
<worktree-dir>/<repo>/<branch>; git owns all state.

Run 'gwt init <shell>' once to install the wrapper function that makes the
switch actually change your shell's directory.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now: attach the logger and printer here so
		// --verbose and --quiet take effect.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		// init and help don't need git
		if cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
			return nil
		}
		return git.CheckGit()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		switch len(args) {
		case 0:
			// Bare invocation: show the listing plus usage, exit non-zero.
			if err := runList(ctx); err != nil {
				log.FromContext(ctx).Warnf("%v", err)
			}
			_ = cmd.Usage()
			return fmt.Errorf("specify a branch name or a subcommand")
		case 1:
			return runSwitch(ctx, args[0])
		default:
			_ = cmd.Usage()
			return fmt.Errorf("expected a single branch name, got %d arguments", len(args))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// gitClient builds the git client used by all commands.
func gitClient() *git.Client {
	return git.NewClient(git.NewRunner())
}

// usageArgs wraps an argument validator so a wrong argument count still
// prints the command's usage, which SilenceUsage suppresses otherwise.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			_ = cmd.Usage()
			return err
		}
		return nil
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all diagnostic output")
	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", "", "Repository name (defaults to the configured default repo)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the worktree path to the clipboard instead of printing it")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newCleanupCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())
}
