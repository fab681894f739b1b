package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/branchwell/gwt/internal/output"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <shell>",
		Short: "Print the shell wrapper that makes branch switches change directory",
		Args:  usageArgs(cobra.ExactArgs(1)),
		Long: `Print a wrapper function for your shell.

A child process cannot change its parent shell's directory, so branch
switches print the target path and the wrapper cds into it. Subcommands are
passed through untouched.`,
		Example: `  eval "$(gwt init bash)"   # in ~/.bashrc
  eval "$(gwt init zsh)"    # in ~/.zshrc
  gwt init fish | source    # in ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			switch args[0] {
			case "bash":
				out.Printf("%s", bashInit)
			case "zsh":
				out.Printf("%s", zshInit)
			case "fish":
				out.Printf("%s", fishInit)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", args[0])
			}
			return nil
		},
	}
}

// The wrappers pass known subcommands straight through and treat everything
// else as a branch switch: capture the printed path and cd into it. Flag
// tokens (and the value after -r/--repo) are skipped when looking for the
// subcommand word.
const bashInit = `# gwt shell wrapper
# Install: eval "$(gwt init bash)"

gwt() {
    local word="" skip=0 arg
    for arg in "$@"; do
        if [[ "$skip" == 1 ]]; then skip=0; continue; fi
        case "$arg" in
            -r|--repo) skip=1 ;;
            -*) ;;
            *) word="$arg"; break ;;
        esac
    done
    case "$word" in
        ""|ls|list|rm|remove|cleanup|config|init|help|completion)
            command gwt "$@"
            ;;
        *)
            local dir
            dir="$(command gwt "$@")" && cd "$dir"
            ;;
    esac
}
`

const zshInit = `# gwt shell wrapper
# Install: eval "$(gwt init zsh)"

gwt() {
    local word="" skip=0 arg
    for arg in "$@"; do
        if [[ "$skip" == 1 ]]; then skip=0; continue; fi
        case "$arg" in
            -r|--repo) skip=1 ;;
            -*) ;;
            *) word="$arg"; break ;;
        esac
    done
    case "$word" in
        ""|ls|list|rm|remove|cleanup|config|init|help|completion)
            command gwt "$@"
            ;;
        *)
            local dir
            dir="$(command gwt "$@")" && cd "$dir"
            ;;
    esac
}
`

const fishInit = `# gwt shell wrapper
# Install: gwt init fish | source
# Or add to config.fish: gwt init fish | source

function gwt --wraps=gwt --description 'git worktree switcher'
    set -l word ""
    set -l skip 0
    for arg in $argv
        if test $skip -eq 1
            set skip 0
            continue
        end
        switch $arg
            case -r --repo
                set skip 1
            case '-*'
            case '*'
                set word $arg
                break
        end
    end
    switch "$word"
        case '' ls list rm remove cleanup config init help completion
            command gwt $argv
        case '*'
            set -l dir (command gwt $argv)
            and cd $dir
    end
end
`
