package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/log"
	"github.com/imqdee/wtree/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupSetup  = "setup"
	GroupConfig = "config"
)

func newRootCmd() *cobra.Command {
	var verbose, quiet bool

	root := &cobra.Command{
		Use:   "wt",
		Short: "Git worktree wrapper for bare repositories",
		Long: `wt manages a bare repository and its worktrees under one directory:

  project/
    .bare/      bare repository
    .git        points at .bare
    .wtree/     hooks.toml and state
    main/       worktree
    feature-x/  worktree

Every command works from the project directory or from anywhere inside a
worktree. Run 'wt init <shell>' once so that 'wt switch' can change the
shell's directory.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), verbose, quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)

			// Skip git check for completion and help commands
			switch cmd.Name() {
			case "completion", "__complete", "help", "init":
				return nil
			}
			if _, ok := git.RunnerFromContext(ctx).(git.CLI); ok {
				return git.CheckGit()
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Worktree Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	root.AddCommand(newCreateCmd())
	root.AddCommand(newSwitchCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newRemoveCmd())

	root.AddCommand(newCloneCmd())
	root.AddCommand(newInitCmd())

	root.AddCommand(newHooksCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// hubRoot resolves the hub from the directory wt was started in.
func hubRoot(ctx context.Context) (string, error) {
	return git.FindHubRoot(config.WorkDirFromContext(ctx))
}
