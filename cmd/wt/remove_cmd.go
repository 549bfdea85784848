package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/hooks"
	"github.com/imqdee/wtree/internal/log"
	"github.com/imqdee/wtree/internal/output"
)

// removeFailure is one target that could not be removed.
type removeFailure struct {
	name string
	err  error
}

// removeError aggregates the failures of a multi-target remove.
type removeError struct {
	failures []removeFailure
}

func (e *removeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to remove %d worktree(s):", len(e.failures))
	for _, f := range e.failures {
		fmt.Fprintf(&b, "\n  %s: %v", f.name, f.err)
	}
	return b.String()
}

func (e *removeError) Unwrap() []error {
	errs := make([]error, len(e.failures))
	for i, f := range e.failures {
		errs[i] = f.err
	}
	return errs
}

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "remove <name>...",
		Short:             "Remove worktrees",
		Aliases:           []string{"rm"},
		GroupID:           GroupCore,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeWorktreeNames,
		Long: `Remove one or more worktrees.

Every name is attempted even when an earlier one fails; the command fails
afterwards listing each worktree that could not be removed. A failing
pre-hook skips that worktree only.`,
		Example: `  wt remove feature-x            # remove one worktree
  wt rm old-1 old-2 old-3        # remove several
  wt rm scratch -f               # even with local changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, git.RunnerFromContext(ctx), hub)
			if err != nil {
				return err
			}

			cfg := config.LoadHooks(ctx, hub)

			var failed []removeFailure
			for _, name := range args {
				if err := removeOne(ctx, cfg, hub, worktrees, name, force); err != nil {
					failed = append(failed, removeFailure{name: name, err: err})
				}
			}

			if len(failed) > 0 {
				return &removeError{failures: failed}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")

	return cmd
}

func removeOne(ctx context.Context, cfg *config.HooksConfig, hub string, worktrees []git.Worktree, name string, force bool) error {
	l := log.FromContext(ctx)

	// unknown names still go to git, which reports the error
	target := name
	path := filepath.Join(hub, name)
	var branch string
	if wt, ok := git.FindWorktree(worktrees, name); ok {
		target = wt.Path
		path = wt.Path
		branch = wt.ShortBranch()
	}

	hc := hooks.NewContext(config.CommandRemove, name, path, hub, branch)
	if err := hooks.RunPre(ctx, cfg, hc); err != nil {
		return err
	}

	l.Debug("removing worktree", "name", name, "target", target, "force", force)
	if err := git.RemoveWorktree(ctx, git.RunnerFromContext(ctx), hub, target, force); err != nil {
		return err
	}
	output.FromContext(ctx).Successf("Removed worktree '%s'", name)

	hooks.RunPost(ctx, cfg, hc)
	return nil
}
