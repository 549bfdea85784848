package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/hooks"
	"github.com/imqdee/wtree/internal/log"
	"github.com/imqdee/wtree/internal/output"
	"github.com/imqdee/wtree/internal/preserve"
	"github.com/imqdee/wtree/internal/state"
	"github.com/imqdee/wtree/internal/ui/prompt"
)

// errNoPrevious is returned by `wt switch -` before any switch happened.
var errNoPrevious = errors.New("No previous worktree. Use 'wt switch <name>' first.")

// errCancelled is returned when the interactive picker is dismissed.
var errCancelled = errors.New("cancelled")

// selectWorktree is the interactive picker; tests replace it.
var selectWorktree = prompt.SelectWorktree

func newSwitchCmd() *cobra.Command {
	var (
		envs        bool
		interactive bool
		copyPath    bool
	)

	cmd := &cobra.Command{
		Use:               "switch [name|-]",
		Short:             "Switch to a worktree",
		Aliases:           []string{"sw"},
		GroupID:           GroupCore,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeWorktreeNames,
		Long: `Print the path of a worktree so the shell wrapper can cd into it.

'-' switches back to the worktree you were in before the last switch.
Without a name (or with -i) an interactive picker is shown when running
in a terminal.

Pre-hooks from .wtree/hooks.toml run first; if one fails the switch is
aborted. Post-hooks run inside the target worktree.`,
		Example: `  wt switch main        # cd into main (needs wt init)
  wt sw -               # toggle back to the previous worktree
  wt switch feature -e  # also copy .env files from the current worktree
  wt switch -i          # pick interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			r := git.RunnerFromContext(ctx)

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, r, hub)
			if err != nil {
				return err
			}

			workDir := config.WorkDirFromContext(ctx)
			current, err := git.CurrentWorktreeName(ctx, r, hub, workDir)
			if err != nil {
				return err
			}

			var name string
			switch {
			case len(args) == 1 && args[0] == "-":
				name, err = state.ReadPrevious(hub)
				if err != nil {
					return err
				}
				if name == "" {
					return errNoPrevious
				}
			case len(args) == 1:
				name = args[0]
			case interactive || (output.IsTerminal(cmd.InOrStdin()) && output.IsTerminal(cmd.ErrOrStderr())):
				res, err := selectWorktree(git.Names(worktrees), current)
				if err != nil {
					return err
				}
				if res.Cancelled {
					return errCancelled
				}
				name = res.Value
			default:
				return fmt.Errorf("missing worktree name (use 'wt switch <name>' or 'wt switch -i')")
			}

			target, ok := git.FindWorktree(worktrees, name)
			if !ok {
				return notFoundError(worktrees, name)
			}

			cfg := config.LoadHooks(ctx, hub)
			hc := hooks.NewContext(config.CommandSwitch, name, target.Path, hub, "")
			if err := hooks.RunPre(ctx, cfg, hc); err != nil {
				return err
			}

			if current != "" && current != name {
				if err := state.SavePrevious(hub, current); err != nil {
					return err
				}
			}

			if envs {
				copyEnvFiles(cmd, worktrees, hub, current, target)
			}

			hooks.RunPost(ctx, cfg, hc)

			if copyPath {
				if err := clipboard.WriteAll(target.Path); err != nil {
					l.Warnf("failed to copy path to clipboard: %v", err)
				} else {
					l.Printf("Copied %s to clipboard\n", target.Path)
				}
			}

			out.Println(target.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&envs, "envs", "e", false, "Copy .env* files (except .env.example) from the current worktree")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the worktree interactively")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Also copy the target path to the clipboard")

	return cmd
}

// copyEnvFiles copies .env files into target. The source is the current
// worktree, or the default-branch worktree when running from the hub root.
// Failures are warnings; the switch itself still succeeds.
func copyEnvFiles(cmd *cobra.Command, worktrees []git.Worktree, hub, current string, target git.Worktree) {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	var source string
	if wt, ok := git.FindWorktree(worktrees, current); ok {
		source = wt.Path
	} else {
		defaultBranch, _ := git.DefaultBranch(ctx, git.RunnerFromContext(ctx), hub)
		path, err := preserve.FindSourceWorktree(worktrees, defaultBranch, target.Path)
		if err != nil {
			l.Warnf("no worktree to copy .env files from")
			return
		}
		source = path
	}

	if source == target.Path {
		return
	}

	copied, err := preserve.CopyEnvFiles(ctx, source, target.Path)
	if err != nil {
		l.Warnf("failed to copy .env files: %v", err)
		return
	}
	for _, name := range copied {
		l.Printf("Copied %s\n", name)
	}
}
