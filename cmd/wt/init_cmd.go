package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Output shell wrapper function",
		GroupID:   GroupSetup,
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.ExactArgs(1),
		Long: `Output a shell wrapper function that lets wt change directories.

A subprocess cannot change its parent shell's directory, so 'wt switch'
only prints a path. The wrapper captures that path and cds into it for
'wt switch' and 'wt sw', and for 'wt create' and 'wt clone' when -s or
--switch is given. Every other command runs unchanged.`,
		Example: `  eval "$(wt init bash)"           # add to ~/.bashrc
  eval "$(wt init zsh)"            # add to ~/.zshrc
  wt init fish | source            # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := shellInit(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}

	return cmd
}

func shellInit(shell string) (string, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return bashInit, nil
	case "zsh":
		return zshInit, nil
	case "fish":
		return fishInit, nil
	}
	return "", fmt.Errorf("Unsupported shell: %s. Supported shells: bash, zsh, fish", shell)
}

// posixWrapper is shared by bash and zsh.
const posixWrapper = `wt() {
    local cd_output=0
    case "$1" in
        switch|sw) cd_output=1 ;;
        create|c|clone)
            local arg
            for arg in "$@"; do
                case "$arg" in
                    -s|--switch) cd_output=1 ;;
                esac
            done
            ;;
    esac

    if [[ $cd_output -eq 1 ]]; then
        local dir
        dir="$(command wt "$@")" || return
        if [[ -d "$dir" ]]; then
            cd "$dir"
        elif [[ -n "$dir" ]]; then
            printf '%s\n' "$dir"
        fi
    else
        command wt "$@"
    fi
}
`

const bashInit = `# wt shell wrapper
# Install: eval "$(wt init bash)"

` + posixWrapper

const zshInit = `# wt shell wrapper
# Install: eval "$(wt init zsh)"

` + posixWrapper

const fishInit = `# wt shell wrapper
# Install: wt init fish | source
# Or add to config.fish: wt init fish | source

function wt --wraps=wt --description 'Git worktree wrapper for bare repositories'
    set -l cd_output 0
    if test (count $argv) -gt 0
        switch $argv[1]
            case switch sw
                set cd_output 1
            case create c clone
                if contains -- -s $argv; or contains -- --switch $argv
                    set cd_output 1
                end
        end
    end

    if test $cd_output -eq 1
        set -l dir (command wt $argv)
        or return $status
        if test -d "$dir"
            cd $dir
        else if test -n "$dir"
            printf '%s\n' $dir
        end
    else
        command wt $argv
    end
end
`
